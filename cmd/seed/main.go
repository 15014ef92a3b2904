// Command seed populates the catalog with the sample movie set. Upserts by
// title, so running it repeatedly does not duplicate entries.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
	"github.com/coleLenting/theSpotWeb/internal/infrastructure/config"
	mongodb "github.com/coleLenting/theSpotWeb/internal/infrastructure/db/mongo"
	"github.com/coleLenting/theSpotWeb/pkg/logger"
)

var movies = []domain.Item{
	{
		Title:       "Inception",
		Description: "A mind-bending thriller about dreams within dreams",
		Genre:       "Science Fiction",
		DailyRate:   5.99,
		InStock:     true,
		ReleaseYear: 2010,
		Director:    "Christopher Nolan",
		ImageURL:    "https://image.tmdb.org/t/p/w500/qoIysxMHsZhaORZl3fGQRc5wMWQ.jpg",
	},
	{
		Title:       "The Dark Knight",
		Description: "Batman faces the Joker in Gotham City",
		Genre:       "Action",
		DailyRate:   6.99,
		InStock:     true,
		ReleaseYear: 2008,
		Director:    "Christopher Nolan",
		ImageURL:    "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
	},
	{
		Title:       "Interstellar",
		Description: "A journey through space and time to save humanity",
		Genre:       "Science Fiction",
		DailyRate:   7.49,
		InStock:     true,
		ReleaseYear: 2014,
		Director:    "Christopher Nolan",
		ImageURL:    "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
	},
	{
		Title:       "Pulp Fiction",
		Description: "Interwoven stories of crime and redemption",
		Genre:       "Crime",
		DailyRate:   5.49,
		InStock:     true,
		ReleaseYear: 1994,
		Director:    "Quentin Tarantino",
		ImageURL:    "https://image.tmdb.org/t/p/w500/dM2w364MScsjFf8pfMbaWUcWrR.jpg",
	},
	{
		Title:       "Spirited Away",
		Description: "A girl enters a magical spirit world",
		Genre:       "Animation",
		DailyRate:   4.99,
		InStock:     true,
		ReleaseYear: 2001,
		Director:    "Hayao Miyazaki",
		ImageURL:    "https://image.tmdb.org/t/p/w500/9yBVqNrukEYyrzhiOrOvVddWUrI.jpg",
	},
	{
		Title:       "The Godfather",
		Description: "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.",
		Genre:       "Crime",
		DailyRate:   6.99,
		InStock:     true,
		ReleaseYear: 1972,
		Director:    "Francis Ford Coppola",
		ImageURL:    "https://image.tmdb.org/t/p/w500/ihMAGhARuYaMlLQshDr8rbprjQn.jpg",
	},
	{
		Title:       "Parasite",
		Description: "A poor family schemes to become employed by a wealthy household.",
		Genre:       "Drama",
		DailyRate:   6.49,
		InStock:     true,
		ReleaseYear: 2019,
		Director:    "Bong Joon-ho",
		ImageURL:    "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
	},
	{
		Title:       "Forrest Gump",
		Description: "Decades of American history seen through the eyes of one remarkable man.",
		Genre:       "Drama",
		DailyRate:   4.49,
		InStock:     true,
		ReleaseYear: 1994,
		Director:    "Robert Zemeckis",
		ImageURL:    "https://image.tmdb.org/t/p/w500/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
	},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	coll := db.Collection("items")
	now := time.Now().UTC()

	for _, m := range movies {
		m.Normalize()
		if err := m.Validate(); err != nil {
			log.Fatal().Err(err).Str("title", m.Title).Msg("seed item invalid")
		}

		update := bson.M{
			"$set": bson.M{
				"description":  m.Description,
				"genre":        m.Genre,
				"daily_rate":   m.DailyRate,
				"in_stock":     m.InStock,
				"release_year": m.ReleaseYear,
				"director":     m.Director,
				"image_url":    m.ImageURL,
				"updated_at":   now,
			},
			"$setOnInsert": bson.M{
				"title":      m.Title,
				"created_at": now,
			},
		}

		res, err := coll.UpdateOne(ctx, bson.M{"title": m.Title}, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Fatal().Err(err).Str("title", m.Title).Msg("seed upsert failed")
		}
		if res.UpsertedCount > 0 {
			log.Info().Str("title", m.Title).Msg("seeded")
		} else {
			log.Info().Str("title", m.Title).Msg("already present, refreshed")
		}
	}

	log.Info().Int("count", len(movies)).Msg("catalog seed complete")
}
