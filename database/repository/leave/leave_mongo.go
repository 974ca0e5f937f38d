package leaveRepo

import (
	"context"
	"fmt"
	"sort"
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

// MongoLeaveRepo implements LeaveRepository using MongoDB.
type MongoLeaveRepo struct {
	coll *mongo.Collection
}

// NewMongoLeaveRepo creates a new instance of LeaveRepository using MongoDB.
func NewMongoLeaveRepo() *MongoLeaveRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("leaves")
	return &MongoLeaveRepo{coll: coll}
}

// EnsureIndexes creates the lookup index used by availability queries.
func (r *MongoLeaveRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "barberId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create leave index: %w", err)
	}
	return nil
}

func (r *MongoLeaveRepo) List(ctx context.Context, filter LeaveFilter) ([]models.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.BarberID != "" {
		query["barberId"] = filter.BarberID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.Leave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}
	return leaves, nil
}

func (r *MongoLeaveRepo) Create(ctx context.Context, leave *models.Leave) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if leave.ID == "" {
		leave.ID = uuid.New().String()
	}
	if leave.Status == "" {
		leave.Status = models.LeavePending
	}
	now := time.Now()
	leave.CreatedAt = now
	leave.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, leave); err != nil {
		return fmt.Errorf("failed to insert leave: %w", err)
	}
	return nil
}

func (r *MongoLeaveRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var leave models.Leave
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&leave)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update leave %s: %w", id, err)
	}
	return &leave, nil
}

func (r *MongoLeaveRepo) ListApprovedForDay(ctx context.Context, barberID, date string) ([]models.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"barberId": barberID, "date": date, "status": models.LeaveApproved}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves for %s on %s: %w", barberID, date, err)
	}
	defer cursor.Close(ctx)

	var leaves []models.Leave
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, fmt.Errorf("failed to decode leaves: %w", err)
	}
	return leaves, nil
}

func (r *MongoLeaveRepo) ApprovedDates(ctx context.Context, barberID, fromDate string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"barberId": barberID,
		"status":   models.LeaveApproved,
		"date":     bson.M{"$gte": fromDate},
	}
	raw, err := r.coll.Distinct(ctx, "date", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to collect leave dates: %w", err)
	}

	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		if d, ok := v.(string); ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates, nil
}
