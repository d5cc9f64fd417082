package dto

import (
	"github.com/gigboard/listing-service/internal/models"
	"github.com/gigboard/listing-service/internal/repository"
	"github.com/gigboard/listing-service/pkg/datefmt"
)

// detailTimeLayout is how start times appear inside detail pages; the flat
// shows page goes through the datefmt filter instead.
const detailTimeLayout = "2006-01-02 15:04:05"

// GroupVenuesByArea partitions venues, already sorted by (state, city), into
// consecutive runs sharing the same location. Concatenating the groups'
// venue lists in order reproduces the input exactly; empty input yields no
// groups at all.
func GroupVenuesByArea(rows []repository.VenueAreaRow) []VenueArea {
	areas := make([]VenueArea, 0)
	for _, row := range rows {
		venue := AreaVenue{
			ID:              row.ID,
			Name:            row.Name,
			FutureShowCount: row.FutureShowCount,
		}
		if n := len(areas); n > 0 && areas[n-1].City == row.City && areas[n-1].State == row.State {
			areas[n-1].Venues = append(areas[n-1].Venues, venue)
			continue
		}
		areas = append(areas, VenueArea{
			City:   row.City,
			State:  row.State,
			Venues: []AreaVenue{venue},
		})
	}
	return areas
}

func ToSearchResponse(rows []repository.NameSearchRow) SearchResponse {
	data := make([]SearchHit, len(rows))
	for i, row := range rows {
		data[i] = SearchHit{ID: row.ID, Name: row.Name, FutureShowCount: row.FutureShowCount}
	}
	return SearchResponse{Count: len(rows), Data: data}
}

func toArtistShowEntries(rows []repository.ShowArtistRow) []ArtistShowEntry {
	entries := make([]ArtistShowEntry, len(rows))
	for i, row := range rows {
		entries[i] = ArtistShowEntry{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       row.StartTime.Format(detailTimeLayout),
		}
	}
	return entries
}

func toVenueShowEntries(rows []repository.ShowVenueRow) []VenueShowEntry {
	entries := make([]VenueShowEntry, len(rows))
	for i, row := range rows {
		entries[i] = VenueShowEntry{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      row.StartTime.Format(detailTimeLayout),
		}
	}
	return entries
}

func ToVenueDetail(venue *models.Venue, past, upcoming []repository.ShowArtistRow) VenueDetailResponse {
	pastEntries := toArtistShowEntries(past)
	upcomingEntries := toArtistShowEntries(upcoming)
	return VenueDetailResponse{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             models.SplitGenres(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		WebsiteLink:        venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          pastEntries,
		UpcomingShows:      upcomingEntries,
		PastShowsCount:     len(pastEntries),
		UpcomingShowsCount: len(upcomingEntries),
	}
}

func ToArtistDetail(artist *models.Artist, past, upcoming []repository.ShowVenueRow) ArtistDetailResponse {
	pastEntries := toVenueShowEntries(past)
	upcomingEntries := toVenueShowEntries(upcoming)
	return ArtistDetailResponse{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             models.SplitGenres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		WebsiteLink:        artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingTalent:      artist.SeekingTalent,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          pastEntries,
		UpcomingShows:      upcomingEntries,
		PastShowsCount:     len(pastEntries),
		UpcomingShowsCount: len(upcomingEntries),
	}
}

func ToArtistSummaries(artists []models.Artist) []ArtistSummary {
	summaries := make([]ArtistSummary, len(artists))
	for i, a := range artists {
		summaries[i] = ArtistSummary{ID: a.ID, Name: a.Name}
	}
	return summaries
}

func ToShowListings(rows []repository.ShowListingRow) []ShowListing {
	listings := make([]ShowListing, len(rows))
	for i, row := range rows {
		listings[i] = ShowListing{
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       datefmt.Format(row.StartTime, datefmt.FormatMedium),
		}
	}
	return listings
}
