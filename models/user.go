package models

// User is a dashboard account. The site has exactly one couple, so in
// practice there is a single seeded admin row, but nothing below depends
// on that.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Name         string `gorm:"type:varchar(150)" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
