package repository

import (
	"context"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]NameSearchRow, error)
	GetDB() *gorm.DB
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// SearchByName mirrors the venue search: case-insensitive substring match,
// empty term matches all, future-show count per hit.
func (r *artistRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]NameSearchRow, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&artists).Error; err != nil {
		return nil, err
	}

	rows := make([]NameSearchRow, 0, len(artists))
	for _, a := range artists {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.Show{}).
			Where("artist_id = ? AND start_time > ?", a.ID, now).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		rows = append(rows, NameSearchRow{ID: a.ID, Name: a.Name, FutureShowCount: int(count)})
	}
	return rows, nil
}
