package models

// Profile is the singleton home-page record: couple identity, event
// details and story copy. The couple names and website URL double as
// the default substitution context for outbound mail.
type Profile struct {
	BaseModel
	CoupleNames     string `gorm:"type:varchar(150);not null" json:"couple_names"`
	WebsiteURL      string `gorm:"type:varchar(500)" json:"website_url"`
	WeddingDate     string `gorm:"type:varchar(100)" json:"wedding_date"`
	CeremonyTime    string `gorm:"type:varchar(50)" json:"ceremony_time"`
	VenueName       string `gorm:"type:varchar(255)" json:"venue_name"`
	VenueAddress    string `gorm:"type:varchar(255)" json:"venue_address"`
	BackgroundImage string `gorm:"type:varchar(500)" json:"background_image"`

	// Love-story paragraphs shown on the home page.
	StoryFirstSpark  string `gorm:"type:text" json:"story_first_spark"`
	StoryAdventures  string `gorm:"type:text" json:"story_adventures"`
	StoryProposal    string `gorm:"type:text" json:"story_proposal"`
	StoryNextChapter string `gorm:"type:text" json:"story_next_chapter"`
}
