package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	AllowOrigins []string

	// MongoClient is nil when MONGO_URI is unset; the server then runs
	// purely in memory and skips snapshot/restore.
	MongoClient *mongo.Client
}

// Load reads configuration from the environment (.env honored when
// present) and connects the Mongo client if a URI is configured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getEnv("MONGO_DB", "capstone"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}

	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		cfg.MongoClient = client
	}
	return cfg, nil
}

// EventsCollection returns the snapshot collection for events.
func (c *Config) EventsCollection() *mongo.Collection {
	return c.MongoClient.Database(c.DBName).Collection("events")
}

// DetailsCollection returns the scan-details collection.
func (c *Config) DetailsCollection() *mongo.Collection {
	return c.MongoClient.Database(c.DBName).Collection("file_details")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
