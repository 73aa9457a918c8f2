package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DanielJacob1998/capstone/models"
)

// EventStore owns the authoritative event collection. Events are held
// in insertion order, which is also the scan order for conflict checks
// and the default order for queries.
type EventStore struct {
	mu     sync.RWMutex
	events []*models.Event
	byID   map[string]*models.Event
}

func NewEventStore() *EventStore {
	return &EventStore{byID: make(map[string]*models.Event)}
}

// CheckAndInsert runs the full creation protocol as one critical
// section: validate, duplicate check, overlap check (unless forced),
// insert. No other write can interleave between the checks and the
// insert.
func (s *EventStore) CheckAndInsert(in models.CreateEventInput) (models.Event, error) {
	normalize(&in)
	if err := validate(in); err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dup := s.findDuplicate(in); dup != nil {
		return models.Event{}, &DuplicateError{Event: *dup}
	}
	if !in.Force {
		if hit := s.findOverlap(in, ""); hit != nil {
			return models.Event{}, &OverlapError{Event: *hit}
		}
	}

	now := time.Now().UTC()
	ev := &models.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Time:        in.Time,
		Location:    in.Location,
		GroupID:     in.GroupID,
		SubgroupID:  in.SubgroupID,
		CreatedBy:   in.CreatedBy,
		Visibility:  in.Visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.events = append(s.events, ev)
	s.byID[ev.ID] = ev
	return *ev, nil
}

// FindByID returns a copy of the event with the given id.
func (s *EventStore) FindByID(id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.byID[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return *ev, nil
}

// Update overwrites only the supplied fields and leaves the rest
// untouched. It deliberately re-runs neither the validator nor the
// conflict detector.
func (s *EventStore) Update(id string, in models.UpdateEventInput) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.byID[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	if in.Title != nil {
		ev.Title = *in.Title
	}
	if in.Description != nil {
		ev.Description = *in.Description
	}
	if in.StartDate != nil {
		ev.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		ev.EndDate = *in.EndDate
	}
	if in.Time != nil {
		ev.Time = *in.Time
	}
	if in.Location != nil {
		ev.Location = *in.Location
	}
	if in.GroupID != nil {
		ev.GroupID = *in.GroupID
	}
	if in.SubgroupID != nil {
		ev.SubgroupID = *in.SubgroupID
	}
	if in.Visibility != nil {
		ev.Visibility = *in.Visibility
	}
	ev.UpdatedAt = time.Now().UTC()
	return *ev, nil
}

// Delete removes the event with the given id. There is no tombstone;
// the id is simply gone.
func (s *EventStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, ev := range s.events {
		if ev.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			break
		}
	}
	return nil
}

// All returns a copy of every event in insertion order.
func (s *EventStore) All() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, len(s.events))
	for i, ev := range s.events {
		out[i] = *ev
	}
	return out
}

// Len reports the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// normalize applies the request defaults: end_date falls back to
// start_date and visibility falls back to "group".
func normalize(in *models.CreateEventInput) {
	in.Title = strings.TrimSpace(in.Title)
	if in.EndDate == "" {
		in.EndDate = in.StartDate
	}
	if in.Visibility == "" {
		in.Visibility = models.VisibilityGroup
	}
}

// validate checks structural well-formedness, short-circuiting on the
// first failure. It never touches the collection.
func validate(in models.CreateEventInput) error {
	if in.Title == "" {
		return validationErrorf("title is required")
	}
	if in.StartDate == "" {
		return validationErrorf("start_date is required")
	}
	if in.EndDate == "" {
		return validationErrorf("end_date is required")
	}
	if in.CreatedBy == "" {
		return validationErrorf("created_by is required")
	}
	start, err := models.ParseDate(in.StartDate)
	if err != nil {
		return validationErrorf("invalid start_date %q, use YYYY-MM-DD", in.StartDate)
	}
	end, err := models.ParseDate(in.EndDate)
	if err != nil {
		return validationErrorf("invalid end_date %q, use YYYY-MM-DD", in.EndDate)
	}
	if end.Before(start) {
		return validationErrorf("end_date must not be before start_date")
	}
	if in.Time != "" {
		if _, err := models.ParseClock(in.Time); err != nil {
			return validationErrorf("invalid time %q, use HH:MM", in.Time)
		}
	}
	switch in.Visibility {
	case models.VisibilityGroup, models.VisibilitySubgroup, models.VisibilityPersonal:
	default:
		return validationErrorf("invalid visibility %q", in.Visibility)
	}
	return nil
}
