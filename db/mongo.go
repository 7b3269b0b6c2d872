// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/danielhkuo/camp-apply/models"
)

// applicantDocument is the stored shape of an applicant.
type applicantDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	GPA         float64            `bson:"gpa"`
	Background  string             `bson:"background"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

type summaryDocument struct {
	Name string  `bson:"name"`
	GPA  float64 `bson:"gpa"`
}

// MongoStore keeps applicants in a single MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// OpenMongo connects with the stable v1 server API and pings the primary.
func OpenMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoStore) Insert(ctx context.Context, applicant models.Applicant) (string, error) {
	doc := applicantDocument{
		Name:        applicant.Name,
		Email:       applicant.Email,
		GPA:         applicant.GPA,
		Background:  applicant.Background,
		SubmittedAt: applicant.SubmittedAt,
	}
	if doc.SubmittedAt.IsZero() {
		doc.SubmittedAt = time.Now()
	}

	res, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert applicant: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*models.Applicant, error) {
	// ObjectIDs grow with insertion time, so _id order is insertion order
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc applicantDocument
	err := s.collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query applicant: %w", err)
	}

	return &models.Applicant{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Email:       doc.Email,
		GPA:         doc.GPA,
		Background:  doc.Background,
		SubmittedAt: doc.SubmittedAt,
	}, nil
}

func (s *MongoStore) FindWhereGPAAtLeast(ctx context.Context, threshold float64) ([]models.ApplicantSummary, error) {
	filter := bson.D{{Key: "gpa", Value: bson.D{{Key: "$gte", Value: threshold}}}}
	opts := options.Find().
		SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "gpa", Value: 1}, {Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "gpa", Value: -1}, {Key: "name", Value: 1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query applicants: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []summaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read applicants: %w", err)
	}

	applicants := make([]models.ApplicantSummary, 0, len(docs))
	for _, d := range docs {
		applicants = append(applicants, models.ApplicantSummary{Name: d.Name, GPA: d.GPA})
	}
	return applicants, nil
}

func (s *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete applicants: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
