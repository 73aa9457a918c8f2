package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/DanielJacob1998/capstone/models"
)

func newTestInput(title, createdBy string) models.CreateEventInput {
	return models.CreateEventInput{
		Title:     title,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-01",
		Time:      "09:00",
		GroupID:   "G1",
		CreatedBy: createdBy,
	}
}

func TestCheckAndInsert_Defaults(t *testing.T) {
	s := NewEventStore()

	ev, err := s.CheckAndInsert(models.CreateEventInput{
		Title:     "Planning",
		StartDate: "2024-03-05",
		CreatedBy: "U1",
	})
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}

	if ev.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if ev.EndDate != "2024-03-05" {
		t.Errorf("end_date: got %q, want start_date fallback", ev.EndDate)
	}
	if ev.Visibility != models.VisibilityGroup {
		t.Errorf("visibility: got %q, want %q", ev.Visibility, models.VisibilityGroup)
	}
	if ev.CreatedAt.IsZero() || ev.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestCheckAndInsert_Validation(t *testing.T) {
	s := NewEventStore()

	cases := []struct {
		name  string
		input models.CreateEventInput
	}{
		{"missing title", models.CreateEventInput{StartDate: "2024-01-01", CreatedBy: "U1"}},
		{"missing start_date", models.CreateEventInput{Title: "X", CreatedBy: "U1"}},
		{"missing created_by", models.CreateEventInput{Title: "X", StartDate: "2024-01-01"}},
		{"bad start_date", models.CreateEventInput{Title: "X", StartDate: "01/02/2024", CreatedBy: "U1"}},
		{"bad end_date", models.CreateEventInput{Title: "X", StartDate: "2024-01-01", EndDate: "soon", CreatedBy: "U1"}},
		{"end before start", models.CreateEventInput{Title: "X", StartDate: "2024-01-02", EndDate: "2024-01-01", CreatedBy: "U1"}},
		{"bad time", models.CreateEventInput{Title: "X", StartDate: "2024-01-01", Time: "9am", CreatedBy: "U1"}},
		{"bad visibility", models.CreateEventInput{Title: "X", StartDate: "2024-01-01", CreatedBy: "U1", Visibility: "public"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CheckAndInsert(tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	if s.Len() != 0 {
		t.Errorf("store size: got %d, want 0 after rejected inserts", s.Len())
	}
}

func TestFindByID(t *testing.T) {
	s := NewEventStore()
	ev, err := s.CheckAndInsert(newTestInput("Standup", "U1"))
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}

	got, err := s.FindByID(ev.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Title != "Standup" {
		t.Errorf("title: got %q, want %q", got.Title, "Standup")
	}

	if _, err := s.FindByID("nonexistent-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_PartialOverwrite(t *testing.T) {
	s := NewEventStore()
	ev, err := s.CheckAndInsert(newTestInput("Standup", "U1"))
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}

	title := "Daily Standup"
	loc := "Room 4"
	updated, err := s.Update(ev.ID, models.UpdateEventInput{Title: &title, Location: &loc})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != title {
		t.Errorf("title: got %q, want %q", updated.Title, title)
	}
	if updated.Location != loc {
		t.Errorf("location: got %q, want %q", updated.Location, loc)
	}
	// Untouched fields survive.
	if updated.StartDate != ev.StartDate || updated.Time != ev.Time {
		t.Error("unsupplied fields must be left as they were")
	}
	if updated.ID != ev.ID {
		t.Error("update must not change identity")
	}

	if _, err := s.Update("nonexistent-id", models.UpdateEventInput{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_DoesNotRecheckConflicts(t *testing.T) {
	s := NewEventStore()
	a, err := s.CheckAndInsert(newTestInput("A", "U1"))
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}
	b, err := s.CheckAndInsert(models.CreateEventInput{
		Title:     "B",
		StartDate: "2024-02-01",
		Time:      "09:00",
		GroupID:   "G1",
		CreatedBy: "U2",
	})
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}

	// Move B onto A's date: create would reject this, update lets it
	// through by design.
	start := a.StartDate
	if _, err := s.Update(b.ID, models.UpdateEventInput{StartDate: &start, EndDate: &start}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("store size: got %d, want 2", s.Len())
	}
}

func TestDelete(t *testing.T) {
	s := NewEventStore()
	ev, err := s.CheckAndInsert(newTestInput("Standup", "U1"))
	if err != nil {
		t.Fatalf("CheckAndInsert failed: %v", err)
	}

	if err := s.Delete(ev.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("store size: got %d, want 0", s.Len())
	}
	if _, err := s.FindByID(ev.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.Delete("nonexistent-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("failed delete must not change the store")
	}
}

func TestAll_InsertionOrder(t *testing.T) {
	s := NewEventStore()
	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		in := newTestInput(title, "U1")
		in.StartDate = "2024-01-0" + string(rune('1'+i))
		in.EndDate = in.StartDate
		if _, err := s.CheckAndInsert(in); err != nil {
			t.Fatalf("CheckAndInsert(%s) failed: %v", title, err)
		}
	}

	all := s.All()
	if len(all) != len(titles) {
		t.Fatalf("got %d events, want %d", len(all), len(titles))
	}
	for i, title := range titles {
		if all[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, all[i].Title, title)
		}
	}
}

func TestCheckAndInsert_CreationIsAtomic(t *testing.T) {
	s := NewEventStore()

	// Many concurrent candidates from different users, all colliding on
	// the same group/date/time. Exactly one may pass the checks.
	const n = 16
	var wg sync.WaitGroup
	successes := make(chan models.Event, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := newTestInput("Meeting "+string(rune('A'+i)), "U"+string(rune('A'+i)))
			if ev, err := s.CheckAndInsert(in); err == nil {
				successes <- ev
			}
		}(i)
	}
	wg.Wait()
	close(successes)

	var won int
	for range successes {
		won++
	}
	if won != 1 {
		t.Errorf("got %d successful inserts, want exactly 1", won)
	}
	if s.Len() != 1 {
		t.Errorf("store size: got %d, want 1", s.Len())
	}
}
