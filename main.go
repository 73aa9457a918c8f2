package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/DanielJacob1998/capstone/config"
	routes "github.com/DanielJacob1998/capstone/routes"
	store "github.com/DanielJacob1998/capstone/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	events := store.NewEventStore()
	details := store.NewDetailsStore()

	// Restore from the last snapshot. A missing or empty collection is
	// a normal first run.
	if cfg.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := events.LoadFrom(ctx, cfg.EventsCollection()); err != nil {
			log.Printf("restore events: %v", err)
		}
		if err := details.LoadFrom(ctx, cfg.DetailsCollection()); err != nil {
			log.Printf("restore file details: %v", err)
		}
		cancel()
		log.Printf("restored %d events from snapshot", events.Len())
	}

	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	routes.SetupRoutes(r, cfg, events, details)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}

	// Snapshot at the defined lifecycle point, after the server has
	// stopped accepting writes.
	if cfg.MongoClient != nil {
		if err := events.SaveTo(ctx, cfg.EventsCollection()); err != nil {
			log.Printf("snapshot events: %v", err)
		}
		if err := details.SaveTo(ctx, cfg.DetailsCollection()); err != nil {
			log.Printf("snapshot file details: %v", err)
		}
		if err := cfg.MongoClient.Disconnect(ctx); err != nil {
			log.Printf("disconnect mongo: %v", err)
		}
	}
}
