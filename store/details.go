package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DanielJacob1998/capstone/models"
)

// DetailsStore tracks the latest scan summary per directory. Like the
// event store it lives in memory and is persisted only at explicit
// lifecycle points.
type DetailsStore struct {
	mu      sync.RWMutex
	details map[string]models.ScanDetail
}

func NewDetailsStore() *DetailsStore {
	return &DetailsStore{details: make(map[string]models.ScanDetail)}
}

// Record stores the summary of a completed scan.
func (d *DetailsStore) Record(directory string, fileCount int, totalSize int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.details[directory] = models.ScanDetail{
		Directory: directory,
		FileCount: fileCount,
		TotalSize: totalSize,
		ScannedAt: time.Now().UTC(),
	}
}

// All returns every scan summary sorted by directory.
func (d *DetailsStore) All() []models.ScanDetail {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.ScanDetail, 0, len(d.details))
	for _, det := range d.details {
		out = append(out, det)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Directory < out[j].Directory })
	return out
}

// SaveTo writes every summary into col, replacing existing documents.
func (d *DetailsStore) SaveTo(ctx context.Context, col *mongo.Collection) error {
	for _, det := range d.All() {
		_, err := col.ReplaceOne(ctx, bson.M{"_id": det.Directory}, det,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadFrom restores summaries from col.
func (d *DetailsStore) LoadFrom(ctx context.Context, col *mongo.Collection) error {
	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	var details []models.ScanDetail
	if err := cursor.All(ctx, &details); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, det := range details {
		d.details[det.Directory] = det
	}
	return nil
}
