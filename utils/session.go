package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
)

// SessionStart returns the request's session from the store placed in
// locals by the router.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store not configured")
	}
	return store.Get(c)
}

// GetUserIDFromSession reads the signed-in user's ID, if any.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionKeyUserID)
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, errors.New("no user in session")
	}
	return id, nil
}

// SignInSession records the authenticated user on the session.
func SignInSession(sess *session.Session, userID uint, userName string) error {
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUserName, userName)
	return sess.Save()
}

// SignOutSession tears the session down.
func SignOutSession(sess *session.Session) error {
	return sess.Destroy()
}
