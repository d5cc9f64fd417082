package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gigboard/listing-service/internal/models"
	"github.com/gigboard/listing-service/internal/repository"
	"github.com/gigboard/listing-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

// ArtistInput mirrors VenueInput without the street address. Required
// fields: name, city, state, phone, facebook link.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	WebsiteLink        string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
}

type ArtistDetail struct {
	Artist        *models.Artist
	PastShows     []repository.ShowVenueRow
	UpcomingShows []repository.ShowVenueRow
}

type ArtistService interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]repository.NameSearchRow, error)
	GetArtistDetail(ctx context.Context, id uint) (*ArtistDetail, error)
	CreateArtist(ctx context.Context, in ArtistInput) (*models.Artist, error)
}

type artistService struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	publisher  *rabbitmq.Publisher
}

func NewArtistService(artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) ArtistService {
	return &artistService{
		artistRepo: artistRepo,
		showRepo:   showRepo,
		publisher:  publisher,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.artistRepo.FindAll(ctx)
}

func (s *artistService) Search(ctx context.Context, term string) ([]repository.NameSearchRow, error) {
	return s.artistRepo.SearchByName(ctx, term, time.Now())
}

func (s *artistService) GetArtistDetail(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("artist %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("artist %d: %w", id, err)
	}

	now := time.Now()
	past, err := s.showRepo.FindPastForArtist(ctx, id, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.showRepo.FindUpcomingForArtist(ctx, id, now)
	if err != nil {
		return nil, err
	}

	return &ArtistDetail{Artist: artist, PastShows: past, UpcomingShows: upcoming}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, in ArtistInput) (*models.Artist, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	artist := &models.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             models.JoinGenres(in.Genres),
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		ImageLink:          in.ImageLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("artist.created", artist)
	}

	return artist, nil
}

func (in ArtistInput) validate() error {
	required := map[string]string{
		"name":          in.Name,
		"city":          in.City,
		"state":         in.State,
		"phone":         in.Phone,
		"facebook_link": in.FacebookLink,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	return nil
}
