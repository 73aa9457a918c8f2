package store

import (
	"time"

	"github.com/DanielJacob1998/capstone/models"
)

// Pagination defaults for event queries.
const (
	DefaultPage = 1
	DefaultSize = 10
)

// QueryParams selects a slice of the collection. StartDate and EndDate
// form an inclusive range over event start dates; both must be given
// for the filter to apply. Page is 1-based.
type QueryParams struct {
	StartDate string
	EndDate   string
	Page      int
	Size      int
}

// Query returns the filtered page in store order plus the total number
// of events matching the filter before pagination.
func (s *EventStore) Query(p QueryParams) ([]models.Event, int, error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}

	var rangeStart, rangeEnd time.Time
	filtered := p.StartDate != "" && p.EndDate != ""
	if filtered {
		var err error
		rangeStart, err = models.ParseDate(p.StartDate)
		if err != nil {
			return nil, 0, validationErrorf("invalid start_date %q, use YYYY-MM-DD", p.StartDate)
		}
		rangeEnd, err = models.ParseDate(p.EndDate)
		if err != nil {
			return nil, 0, validationErrorf("invalid end_date %q, use YYYY-MM-DD", p.EndDate)
		}
	}

	s.mu.RLock()
	matched := make([]models.Event, 0, len(s.events))
	for _, ev := range s.events {
		if filtered {
			start, err := models.ParseDate(ev.StartDate)
			if err != nil {
				continue
			}
			if start.Before(rangeStart) || start.After(rangeEnd) {
				continue
			}
		}
		matched = append(matched, *ev)
	}
	s.mu.RUnlock()

	total := len(matched)
	offset := (p.Page - 1) * p.Size
	if offset >= total {
		return []models.Event{}, total, nil
	}
	end := offset + p.Size
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
