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

// VenueInput is the validated-form payload for creating a venue. Required
// fields: name, city, state, address, phone, facebook link.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	WebsiteLink        string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
}

// VenueDetail bundles a venue with its shows split into past and upcoming
// at the time the request was evaluated.
type VenueDetail struct {
	Venue         *models.Venue
	PastShows     []repository.ShowArtistRow
	UpcomingShows []repository.ShowArtistRow
}

type VenueService interface {
	ListAreas(ctx context.Context) ([]repository.VenueAreaRow, error)
	Search(ctx context.Context, term string) ([]repository.NameSearchRow, error)
	GetVenueDetail(ctx context.Context, id uint) (*VenueDetail, error)
	CreateVenue(ctx context.Context, in VenueInput) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	publisher *rabbitmq.Publisher
}

func NewVenueService(venueRepo repository.VenueRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		showRepo:  showRepo,
		publisher: publisher,
	}
}

func (s *venueService) ListAreas(ctx context.Context) ([]repository.VenueAreaRow, error) {
	return s.venueRepo.FindAllSorted(ctx, time.Now())
}

func (s *venueService) Search(ctx context.Context, term string) ([]repository.NameSearchRow, error) {
	return s.venueRepo.SearchByName(ctx, term, time.Now())
}

func (s *venueService) GetVenueDetail(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("venue %d: %w", id, err)
	}

	// Classification against the clock is evaluated per request, never
	// cached; one instant keeps the two sets disjoint.
	now := time.Now()
	past, err := s.showRepo.FindPastForVenue(ctx, id, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.showRepo.FindUpcomingForVenue(ctx, id, now)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{Venue: venue, PastShows: past, UpcomingShows: upcoming}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, in VenueInput) (*models.Venue, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             models.JoinGenres(in.Genres),
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		ImageLink:          in.ImageLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}

	// A single insert; the store commits or rejects it as a whole.
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("venue.created", venue)
	}

	return venue, nil
}

// DeleteVenue removes a venue that no show references. Deletes are rejected
// while dependent shows exist; the RESTRICT foreign key backs the same rule
// at the schema level.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("venue %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("venue %d: %w", id, err)
	}

	err = s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.deleteWithinTx(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("venue.deleted", venue)
	}

	return venue, nil
}

// deleteWithinTx checks for dependent shows and deletes the venue inside
// the caller's transaction. A show inserted after the count still trips
// the RESTRICT foreign key; that violation is reported the same way as a
// failed count, not as a store fault.
func (s *venueService) deleteWithinTx(ctx context.Context, tx *gorm.DB, id uint) error {
	dependents, err := s.venueRepo.CountShows(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if dependents > 0 {
		return fmt.Errorf("venue %d has %d shows: %w", id, dependents, ErrReferential)
	}
	if err := s.venueRepo.Delete(ctx, tx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("venue %d still has shows: %w", id, ErrReferential)
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (in VenueInput) validate() error {
	required := map[string]string{
		"name":          in.Name,
		"city":          in.City,
		"state":         in.State,
		"address":       in.Address,
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
