package configs

import (
	"os"
	"strconv"
	"time"

	"liamandmia.wedding/configs/configsdatabase"
	"liamandmia.wedding/configs/configslog"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv reads the optional .env file. Missing file is fine in
// production where variables come from the environment itself.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env not found, relying on process environment")
	}
}

// GetDB exposes the shared database handle to repositories.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// SiteSettings carries the public identity of the wedding site, used as
// the default templating context for outbound mail.
type SiteSettings struct {
	ListenAddr  string
	WebsiteURL  string
	CoupleNames string
}

// MailSettings configures the outbound transport. An empty APIKey puts
// dispatch into demo mode: no transport calls, simulated outcome.
type MailSettings struct {
	APIKey      string
	FromAddress string
	// InterMessageDelay spaces sequential sends to stay inside the
	// provider's per-second quota.
	InterMessageDelay time.Duration
	// RateLimitPenalty is the one-shot extra pause applied after a
	// rate-limited send, before the next recipient.
	RateLimitPenalty time.Duration
}

// Site loads SiteSettings from the environment.
func Site() SiteSettings {
	return SiteSettings{
		ListenAddr:  envOr("LISTEN_ADDR", ":3000"),
		WebsiteURL:  envOr("WEBSITE_URL", "https://liamandmia.wedding"),
		CoupleNames: envOr("COUPLE_NAMES", "Liam & Mia"),
	}
}

// Mail loads MailSettings from the environment.
func Mail() MailSettings {
	return MailSettings{
		APIKey:            os.Getenv("RESEND_API_KEY"),
		FromAddress:       envOr("MAIL_FROM_ADDRESS", "hello@liamandmia.wedding"),
		InterMessageDelay: envDurationMs("MAIL_SEND_DELAY_MS", 650),
		RateLimitPenalty:  envDurationMs("MAIL_RATE_LIMIT_PENALTY_MS", 2000),
	}
}

// SetupSession builds the cookie-backed session store shared by the
// auth and dashboard surfaces.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   os.Getenv("APP_ENV") == "production",
		KeyLookup:      "cookie:wedding_session",
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationMs(key string, fallbackMs int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
