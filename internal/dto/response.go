package dto

// MessageResponse carries the flash-style outcome line shown to users
// after a submission.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope the error handler writes for any error
// escaping a handler.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CreateResponse reports a successful submission: the new row's id plus
// the outcome line.
type CreateResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// AreaVenue is one venue inside a city/state group on the venues page.
type AreaVenue struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	FutureShowCount int    `json:"future_show_count"`
}

// VenueArea is one consecutive run of venues sharing a city and state.
type VenueArea struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

type SearchHit struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	FutureShowCount int    `json:"future_show_count"`
}

type SearchResponse struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// ArtistShowEntry is a show seen from a venue page: the artist side plus
// the start time, formatted for display.
type ArtistShowEntry struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShowEntry is the mirror image for an artist page.
type VenueShowEntry struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetailResponse struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	WebsiteLink        string            `json:"website_link"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingTalent      bool              `json:"seeking_talent"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

type ArtistDetailResponse struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	WebsiteLink        string           `json:"website_link"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// ArtistSummary is one row of the flat artists page.
type ArtistSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ShowListing is one row of the flat shows page.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
