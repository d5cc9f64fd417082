package service

import (
	"context"
	"testing"
	"time"

	"github.com/gigboard/listing-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShow_MissingArtistID(t *testing.T) {
	svc := NewShowService(&mockShowRepo{}, &mockArtistRepo{}, &mockVenueRepo{}, nil)

	_, err := svc.CreateShow(context.Background(), ShowInput{
		VenueID:   1,
		StartTime: "2035-04-01T20:00:00Z",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateShow_MissingStartTime(t *testing.T) {
	svc := NewShowService(&mockShowRepo{}, &mockArtistRepo{}, &mockVenueRepo{}, nil)

	_, err := svc.CreateShow(context.Background(), ShowInput{ArtistID: 4, VenueID: 1})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateShow_UnparseableStartTime(t *testing.T) {
	svc := NewShowService(&mockShowRepo{}, &mockArtistRepo{}, &mockVenueRepo{}, nil)

	_, err := svc.CreateShow(context.Background(), ShowInput{
		ArtistID:  4,
		VenueID:   1,
		StartTime: "next friday evening",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseStartTime_AcceptedLayouts(t *testing.T) {
	cases := []string{
		"2035-04-01T20:00:00Z",
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
	}

	for _, value := range cases {
		parsed, err := parseStartTime(value)
		require.NoError(t, err, value)
		assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), parsed.UTC(), value)
	}
}

func TestListShows(t *testing.T) {
	shows := &mockShowRepo{
		listFn: func(ctx context.Context) ([]repository.ShowListingRow, error) {
			return []repository.ShowListingRow{
				{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals"},
			}, nil
		},
	}

	svc := NewShowService(shows, &mockArtistRepo{}, &mockVenueRepo{}, nil)
	rows, err := svc.ListShows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Guns N Petals", rows[0].ArtistName)
}
