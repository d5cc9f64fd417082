package models

import "time"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}
