package dto

type CreateVenueRequest struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Address            string   `json:"address" form:"address"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

type CreateArtistRequest struct {
	Name               string   `json:"name" form:"name"`
	City               string   `json:"city" form:"city"`
	State              string   `json:"state" form:"state"`
	Phone              string   `json:"phone" form:"phone"`
	Genres             []string `json:"genres" form:"genres"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link"`
	WebsiteLink        string   `json:"website_link" form:"website_link"`
	ImageLink          string   `json:"image_link" form:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

type CreateShowRequest struct {
	ArtistID  uint   `json:"artist_id" form:"artist_id"`
	VenueID   uint   `json:"venue_id" form:"venue_id"`
	StartTime string `json:"start_time" form:"start_time"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term" query:"search_term"`
}
