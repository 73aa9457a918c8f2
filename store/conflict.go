package store

import "github.com/DanielJacob1998/capstone/models"

// findDuplicate reports an existing event matching the candidate
// exactly on (title, start_date, time, location, created_by).
// Caller must hold the lock.
func (s *EventStore) findDuplicate(in models.CreateEventInput) *models.Event {
	for _, ev := range s.events {
		if ev.Title == in.Title &&
			ev.StartDate == in.StartDate &&
			ev.Time == in.Time &&
			ev.Location == in.Location &&
			ev.CreatedBy == in.CreatedBy {
			return ev
		}
	}
	return nil
}

// findOverlap scans the collection in insertion order and returns the
// first event that collides in time with the candidate within its
// visibility scope. excludeID skips a specific event, for re-checks
// against the event's own record. Caller must hold the lock.
//
// Exclusion rules, applied before the interval test:
//   - personal candidates are comparable to nothing;
//   - subgroup visibility compares only events in the same subgroup;
//   - group visibility compares only events in the same group;
//   - a user's own events never conflict with each other.
func (s *EventStore) findOverlap(in models.CreateEventInput, excludeID string) *models.Event {
	if in.Visibility == models.VisibilityPersonal {
		return nil
	}
	candStart, err := models.ParseDate(in.StartDate)
	if err != nil {
		return nil
	}
	candEnd, err := models.ParseDate(in.EndDate)
	if err != nil {
		return nil
	}
	for _, ev := range s.events {
		if ev.ID == excludeID {
			continue
		}
		if in.Visibility == models.VisibilitySubgroup && ev.SubgroupID != in.SubgroupID {
			continue
		}
		if in.Visibility == models.VisibilityGroup && ev.GroupID != in.GroupID {
			continue
		}
		if ev.CreatedBy == in.CreatedBy {
			continue
		}
		evStart, err := models.ParseDate(ev.StartDate)
		if err != nil {
			continue
		}
		evEnd, err := models.ParseDate(ev.EndDate)
		if err != nil {
			continue
		}
		// Intervals intersect when neither lies strictly before the
		// other. An untimed candidate collides with any time of day;
		// a timed one collides only with the exact same time.
		if !candStart.After(evEnd) && !candEnd.Before(evStart) &&
			(in.Time == "" || ev.Time == in.Time) {
			return ev
		}
	}
	return nil
}
