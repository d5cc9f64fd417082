package repository

import (
	"context"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"gorm.io/gorm"
)

// ShowArtistRow is a show joined to its artist, for venue detail pages.
type ShowArtistRow struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowVenueRow is a show joined to its venue, for artist detail pages.
type ShowVenueRow struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListingRow is a show joined to both sides, for the flat listing.
type ShowListingRow struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindPastForVenue(ctx context.Context, venueID uint, now time.Time) ([]ShowArtistRow, error)
	FindUpcomingForVenue(ctx context.Context, venueID uint, now time.Time) ([]ShowArtistRow, error)
	FindPastForArtist(ctx context.Context, artistID uint, now time.Time) ([]ShowVenueRow, error)
	FindUpcomingForArtist(ctx context.Context, artistID uint, now time.Time) ([]ShowVenueRow, error)
	FindAllWithNames(ctx context.Context) ([]ShowListingRow, error)
	GetDB() *gorm.DB
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return tx.WithContext(ctx).Create(show).Error
}

// A show is "upcoming" when its start time is strictly after now; anything
// at or before now counts as past. The two predicates below keep the sets
// disjoint and complete.

func (r *showRepository) FindPastForVenue(ctx context.Context, venueID uint, now time.Time) ([]ShowArtistRow, error) {
	return r.findForVenue(ctx, venueID, "shows.start_time <= ?", now)
}

func (r *showRepository) FindUpcomingForVenue(ctx context.Context, venueID uint, now time.Time) ([]ShowArtistRow, error) {
	return r.findForVenue(ctx, venueID, "shows.start_time > ?", now)
}

func (r *showRepository) findForVenue(ctx context.Context, venueID uint, timeCond string, now time.Time) ([]ShowArtistRow, error) {
	var rows []ShowArtistRow
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Where(timeCond, now).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *showRepository) FindPastForArtist(ctx context.Context, artistID uint, now time.Time) ([]ShowVenueRow, error) {
	return r.findForArtist(ctx, artistID, "shows.start_time <= ?", now)
}

func (r *showRepository) FindUpcomingForArtist(ctx context.Context, artistID uint, now time.Time) ([]ShowVenueRow, error) {
	return r.findForArtist(ctx, artistID, "shows.start_time > ?", now)
}

func (r *showRepository) findForArtist(ctx context.Context, artistID uint, timeCond string, now time.Time) ([]ShowVenueRow, error) {
	var rows []ShowVenueRow
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.venue_id AS venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time AS start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Where(timeCond, now).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *showRepository) FindAllWithNames(ctx context.Context) ([]ShowListingRow, error) {
	var rows []ShowListingRow
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.venue_id AS venue_id, venues.name AS venue_name, shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Order("shows.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
