package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DanielJacob1998/capstone/models"
)

// Snapshot returns a copy of the full collection in insertion order.
func (s *EventStore) Snapshot() []models.Event {
	return s.All()
}

// Restore replaces the collection contents. Later events win on a
// duplicated id. Intended for host startup, before the store is shared.
func (s *EventStore) Restore(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make([]*models.Event, 0, len(events))
	s.byID = make(map[string]*models.Event, len(events))
	for i := range events {
		ev := events[i]
		if _, ok := s.byID[ev.ID]; ok {
			continue
		}
		p := &ev
		s.events = append(s.events, p)
		s.byID[ev.ID] = p
	}
}

// SaveTo writes a snapshot of the collection into col, replacing
// whatever the collection held. Invoked by the host at shutdown.
func (s *EventStore) SaveTo(ctx context.Context, col *mongo.Collection) error {
	snapshot := s.Snapshot()
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(snapshot) == 0 {
		return nil
	}
	docs := make([]interface{}, len(snapshot))
	for i, ev := range snapshot {
		docs[i] = ev
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

// LoadFrom restores the collection from col. Documents come back in
// creation order so the store's insertion order survives a restart.
func (s *EventStore) LoadFrom(ctx context.Context, col *mongo.Collection) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return err
	}
	s.Restore(events)
	return nil
}
