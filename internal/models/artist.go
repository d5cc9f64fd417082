package models

import "time"

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"size:120;not null" json:"city"`
	State              string    `gorm:"size:120;not null" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	WebsiteLink        string    `gorm:"size:120" json:"website_link"`
	Genres             string    `gorm:"not null;default:''" json:"genres"`
	SeekingTalent      bool      `gorm:"default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:255" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:RESTRICT" json:"-"`
}
