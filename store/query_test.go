package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DanielJacob1998/capstone/models"
)

// seedEvents inserts n single-day events on consecutive January days,
// all owned by one user so no conflicts fire.
func seedEvents(t *testing.T, s *EventStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.CheckAndInsert(models.CreateEventInput{
			Title:     fmt.Sprintf("event-%02d", i+1),
			StartDate: fmt.Sprintf("2024-01-%02d", i+1),
			CreatedBy: "U1",
		})
		require.NoError(t, err)
	}
}

func TestQuery_NoFilterReturnsAll(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 5)

	events, total, err := s.Query(QueryParams{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, events, 5)
	require.Equal(t, "event-01", events[0].Title, "store order is the default order")
}

func TestQuery_RangeFilter(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 10)

	events, total, err := s.Query(QueryParams{
		StartDate: "2024-01-03",
		EndDate:   "2024-01-06",
		Page:      1,
		Size:      10,
	})
	require.NoError(t, err)
	require.Equal(t, 4, total, "range bounds are inclusive")
	require.Equal(t, "event-03", events[0].Title)
	require.Equal(t, "event-06", events[3].Title)
}

func TestQuery_SingleBoundIgnoresFilter(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 4)

	_, total, err := s.Query(QueryParams{StartDate: "2024-01-02", Page: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 4, total)
}

func TestQuery_MalformedRange(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 2)

	_, _, err := s.Query(QueryParams{StartDate: "01-02-2024", EndDate: "2024-01-05"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, _, err = s.Query(QueryParams{StartDate: "2024-01-01", EndDate: "not-a-date"})
	require.ErrorAs(t, err, &vErr)
}

func TestQuery_Pagination(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 23)

	for _, tc := range []struct {
		page, size int
		wantLen    int
		wantFirst  string
	}{
		{1, 10, 10, "event-01"},
		{2, 10, 10, "event-11"},
		{3, 10, 3, "event-21"},
		{4, 10, 0, ""},
		{2, 5, 5, "event-06"},
	} {
		events, total, err := s.Query(QueryParams{Page: tc.page, Size: tc.size})
		require.NoError(t, err)
		require.Equal(t, 23, total, "total is measured before slicing")
		require.Len(t, events, tc.wantLen, "page=%d size=%d", tc.page, tc.size)
		if tc.wantLen > 0 {
			require.Equal(t, tc.wantFirst, events[0].Title)
		}
	}
}

func TestQuery_Defaults(t *testing.T) {
	s := NewEventStore()
	seedEvents(t, s, 15)

	events, total, err := s.Query(QueryParams{})
	require.NoError(t, err)
	require.Equal(t, 15, total)
	require.Len(t, events, DefaultSize)

	// Out-of-range params fall back to the defaults too.
	events, _, err = s.Query(QueryParams{Page: -3, Size: 0})
	require.NoError(t, err)
	require.Len(t, events, DefaultSize)
	require.Equal(t, "event-01", events[0].Title)
}
