package repository

import (
	"context"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"gorm.io/gorm"
)

// VenueAreaRow is one venue in the grouped listing, already ordered by
// (state, city) so consecutive rows with the same location form one area.
type VenueAreaRow struct {
	ID              uint
	Name            string
	City            string
	State           string
	FutureShowCount int
}

// NameSearchRow is one hit of a name search, for venues and artists alike.
type NameSearchRow struct {
	ID              uint
	Name            string
	FutureShowCount int
}

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error)
	FindAllSorted(ctx context.Context, now time.Time) ([]VenueAreaRow, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]NameSearchRow, error)
	CountShows(ctx context.Context, tx *gorm.DB, venueID uint) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, venueID uint) error
	GetDB() *gorm.DB
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindByIDTx is the transaction-scoped variant used by mutations that must
// prove a venue exists before writing rows that reference it.
func (r *venueRepository) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindAllSorted returns every venue ordered by state then city; id breaks
// ties so rows keep insertion order inside one location.
func (r *venueRepository) FindAllSorted(ctx context.Context, now time.Time) ([]VenueAreaRow, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).
		Order("state ASC, city ASC, id ASC").
		Find(&venues).Error; err != nil {
		return nil, err
	}

	rows := make([]VenueAreaRow, 0, len(venues))
	for _, v := range venues {
		count, err := r.countFutureShows(ctx, v.ID, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, VenueAreaRow{
			ID:              v.ID,
			Name:            v.Name,
			City:            v.City,
			State:           v.State,
			FutureShowCount: count,
		})
	}
	return rows, nil
}

// SearchByName matches case-insensitively on any substring of the name.
// An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]NameSearchRow, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&venues).Error; err != nil {
		return nil, err
	}

	rows := make([]NameSearchRow, 0, len(venues))
	for _, v := range venues {
		count, err := r.countFutureShows(ctx, v.ID, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, NameSearchRow{ID: v.ID, Name: v.Name, FutureShowCount: count})
	}
	return rows, nil
}

func (r *venueRepository) countFutureShows(ctx context.Context, venueID uint, now time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, now).
		Count(&count).Error
	return int(count), err
}

func (r *venueRepository) CountShows(ctx context.Context, tx *gorm.DB, venueID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Show{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error
	return count, err
}

func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, venueID uint) error {
	return tx.WithContext(ctx).Delete(&models.Venue{}, venueID).Error
}
