package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the Mongo client and the collections the site uses. It is
// constructed once in main and passed down; repositories never reach for a
// package global.
type Store struct {
	Client *mongo.Client

	Admins      *mongo.Collection
	Blog        *mongo.Collection
	Team        *mongo.Collection
	Instagram   *mongo.Collection
	Subscribers *mongo.Collection
	Settings    *mongo.Collection
}

func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	d := client.Database(database)
	return &Store{
		Client:      client,
		Admins:      d.Collection("admins"),
		Blog:        d.Collection("blog"),
		Team:        d.Collection("team"),
		Instagram:   d.Collection("instagram"),
		Subscribers: d.Collection("newsletter-subscribers"),
		Settings:    d.Collection("settings"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
