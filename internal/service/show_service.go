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

// startTimeLayouts are the accepted wire formats for a show's start time.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

type ShowInput struct {
	ArtistID  uint
	VenueID   uint
	StartTime string
}

type ShowService interface {
	ListShows(ctx context.Context) ([]repository.ShowListingRow, error)
	CreateShow(ctx context.Context, in ShowInput) (*models.Show, error)
}

type showService struct {
	showRepo   repository.ShowRepository
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
	publisher  *rabbitmq.Publisher
}

func NewShowService(showRepo repository.ShowRepository, artistRepo repository.ArtistRepository, venueRepo repository.VenueRepository, publisher *rabbitmq.Publisher) ShowService {
	return &showService{
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		publisher:  publisher,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]repository.ShowListingRow, error) {
	return s.showRepo.FindAllWithNames(ctx)
}

// CreateShow persists a show after proving both foreign keys resolve. The
// existence checks and the insert share one transaction so a concurrent
// delete cannot slip between them.
func (s *showService) CreateShow(ctx context.Context, in ShowInput) (*models.Show, error) {
	if in.ArtistID == 0 || in.VenueID == 0 {
		return nil, fmt.Errorf("%w: artist_id and venue_id are required", ErrValidation)
	}

	startTime, err := parseStartTime(in.StartTime)
	if err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: startTime,
	}

	err = s.showRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.artistRepo.FindByIDTx(ctx, tx, in.ArtistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("artist %d does not exist: %w", in.ArtistID, ErrReferential)
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		if _, err := s.venueRepo.FindByIDTx(ctx, tx, in.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("venue %d does not exist: %w", in.VenueID, ErrReferential)
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		if err := s.showRepo.Create(ctx, tx, show); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("show.created", show)
	}

	return show, nil
}

func parseStartTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: start_time is required", ErrValidation)
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable start_time %q", ErrValidation, value)
}
