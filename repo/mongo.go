package repo

import (
	"context"
	"errors"
	"time"

	"atelier/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// Mongo is the Store implementation over a mongo collection.
type Mongo[T any] struct {
	col  *mongo.Collection
	sort bson.D
}

// NewMongo wraps col. sort orders List results; nil keeps insertion order.
func NewMongo[T any](col *mongo.Collection, sort bson.D) *Mongo[T] {
	return &Mongo[T]{col: col, sort: sort}
}

// DateDesc is the List order for dated feeds (blog, instagram).
var DateDesc = bson.D{{Key: "date", Value: -1}}

func (m *Mongo[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find()
	if m.sort != nil {
		opts.SetSort(m.sort)
	}
	cursor, err := m.col.Find(ctx, toBson(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo[T]) GetByID(ctx context.Context, id string) (T, error) {
	return m.GetByField(ctx, "id", id)
}

func (m *Mongo[T]) GetByField(ctx context.Context, field, value string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc T
	err := m.col.FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, apperrors.ErrNotFound
	}
	return doc, err
}

func (m *Mongo[T]) Create(ctx context.Context, doc T) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *Mongo[T]) Update(ctx context.Context, id string, fields Filter) (T, error) {
	// Mongo rejects an empty $set document.
	if len(fields) == 0 {
		return m.GetByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": toBson(fields)}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, apperrors.ErrNotFound
	}
	return doc, err
}

func (m *Mongo[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := m.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *Mongo[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return m.col.CountDocuments(ctx, toBson(filter))
}

func (m *Mongo[T]) InsertMany(ctx context.Context, docs []T) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	batch := make([]interface{}, len(docs))
	for i, d := range docs {
		batch[i] = d
	}
	_, err := m.col.InsertMany(ctx, batch)
	return err
}

func toBson(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}
