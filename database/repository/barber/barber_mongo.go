package barberRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trimly/config"
	"trimly/database"
	"trimly/database/repository"
	"trimly/models"
)

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo creates a new instance of BarberRepository using MongoDB.
func NewMongoBarberRepo() *MongoBarberRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("barbers")
	return &MongoBarberRepo{coll: coll}
}

func (r *MongoBarberRepo) List(ctx context.Context, branchID string) ([]models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{"active": true}
	if branchID != "" {
		query["branchId"] = branchID
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("failed to decode barbers: %w", err)
	}
	return barbers, nil
}

func (r *MongoBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var barber models.Barber
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber %s: %w", id, err)
	}
	return &barber, nil
}

func (r *MongoBarberRepo) GetByName(ctx context.Context, name string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var barber models.Barber
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber %q: %w", name, err)
	}
	return &barber, nil
}

func (r *MongoBarberRepo) Create(ctx context.Context, barber *models.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if barber.ID == "" {
		barber.ID = uuid.New().String()
	}
	barber.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("failed to insert barber: %w", err)
	}
	return nil
}
