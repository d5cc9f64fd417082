package service

import (
	"context"
	"testing"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"github.com/gigboard/listing-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock ArtistRepository ---

type mockArtistRepo struct {
	createFn   func(ctx context.Context, artist *models.Artist) error
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
	findAllFn  func(ctx context.Context) ([]models.Artist, error)
	searchFn   func(ctx context.Context, term string, now time.Time) ([]repository.NameSearchRow, error)
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	return m.createFn(ctx, artist)
}
func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) {
	return m.findAllFn(ctx)
}
func (m *mockArtistRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]repository.NameSearchRow, error) {
	return m.searchFn(ctx, term, now)
}
func (m *mockArtistRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func sampleArtistInput() ArtistInput {
	return ArtistInput{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		FacebookLink: "https://www.facebook.com/GunsNPetals",
		WebsiteLink:  "https://www.gunsnpetalsband.com",
	}
}

func TestCreateArtist_Success(t *testing.T) {
	var stored *models.Artist
	repo := &mockArtistRepo{
		createFn: func(ctx context.Context, artist *models.Artist) error {
			artist.ID = 4
			stored = artist
			return nil
		},
	}

	svc := NewArtistService(repo, &mockShowRepo{}, nil)
	artist, err := svc.CreateArtist(context.Background(), sampleArtistInput())

	require.NoError(t, err)
	assert.Equal(t, uint(4), artist.ID)
	assert.Equal(t, "Rock n Roll", stored.Genres)
}

func TestCreateArtist_MissingPhone(t *testing.T) {
	svc := NewArtistService(&mockArtistRepo{}, &mockShowRepo{}, nil)

	in := sampleArtistInput()
	in.Phone = ""

	_, err := svc.CreateArtist(context.Background(), in)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetArtistDetail_Success(t *testing.T) {
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return &models.Artist{ID: id, Name: "Guns N Petals"}, nil
		},
	}
	shows := &mockShowRepo{
		pastForArtistFn: func(ctx context.Context, artistID uint, now time.Time) ([]repository.ShowVenueRow, error) {
			return nil, nil
		},
		futureForArtistFn: func(ctx context.Context, artistID uint, now time.Time) ([]repository.ShowVenueRow, error) {
			return []repository.ShowVenueRow{{VenueID: 1, VenueName: "The Musical Hop"}}, nil
		},
	}

	svc := NewArtistService(repo, shows, nil)
	detail, err := svc.GetArtistDetail(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", detail.Artist.Name)
	assert.Len(t, detail.UpcomingShows, 1)
}

func TestGetArtistDetail_NotFound(t *testing.T) {
	repo := &mockArtistRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Artist, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewArtistService(repo, &mockShowRepo{}, nil)
	detail, err := svc.GetArtistDetail(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, detail)
}

func TestListArtists(t *testing.T) {
	repo := &mockArtistRepo{
		findAllFn: func(ctx context.Context) ([]models.Artist, error) {
			return []models.Artist{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, nil
		},
	}

	svc := NewArtistService(repo, &mockShowRepo{}, nil)
	artists, err := svc.ListArtists(context.Background())

	require.NoError(t, err)
	assert.Len(t, artists, 2)
}
