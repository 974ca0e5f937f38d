package shiftRepo

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

// MongoShiftRepo implements ShiftRepository using MongoDB.
type MongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo creates a new instance of ShiftRepository using MongoDB.
func NewMongoShiftRepo() *MongoShiftRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("shifts")
	return &MongoShiftRepo{coll: coll}
}

// EnsureIndexes creates the lookup indexes used by availability queries.
func (r *MongoShiftRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "barberId", Value: 1}, {Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "branchId", Value: 1}, {Key: "date", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create shift indexes: %w", err)
	}
	return nil
}

func (r *MongoShiftRepo) List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.BranchID != "" {
		query["branchId"] = filter.BranchID
	}
	if filter.BarberID != "" {
		query["barberId"] = filter.BarberID
	}
	if filter.DateFrom != "" || filter.DateTo != "" {
		dateRange := bson.M{}
		if filter.DateFrom != "" {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo != "" {
			dateRange["$lte"] = filter.DateTo
		}
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "interval.start", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	return shifts, nil
}

func (r *MongoShiftRepo) GetByID(ctx context.Context, id string) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var shift models.Shift
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shift); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch shift %s: %w", id, err)
	}
	return &shift, nil
}

func (r *MongoShiftRepo) ListForDay(ctx context.Context, barberID, branchID, date string) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"barberId": barberID, "branchId": branchID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for %s on %s: %w", barberID, date, err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	return shifts, nil
}

func (r *MongoShiftRepo) Create(ctx context.Context, shift *models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now

	return r.withTxn(ctx, func(sc mongo.SessionContext) error {
		if err := r.checkOverlap(sc, shift); err != nil {
			return err
		}
		if _, err := r.coll.InsertOne(sc, shift); err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
		return nil
	})
}

func (r *MongoShiftRepo) Update(ctx context.Context, shift *models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	shift.UpdatedAt = time.Now()

	return r.withTxn(ctx, func(sc mongo.SessionContext) error {
		if err := r.checkOverlap(sc, shift); err != nil {
			return err
		}
		res, err := r.coll.ReplaceOne(sc, bson.M{"id": shift.ID}, shift)
		if err != nil {
			return fmt.Errorf("failed to update shift %s: %w", shift.ID, err)
		}
		if res.MatchedCount == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *MongoShiftRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoShiftRepo) DistinctDates(ctx context.Context, barberID, branchID, fromDate string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"barberId": barberID,
		"branchId": branchID,
		"date":     bson.M{"$gte": fromDate},
	}
	raw, err := r.coll.Distinct(ctx, "date", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to collect shift dates: %w", err)
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

// checkOverlap loads the candidate's sibling shifts (same barber and date,
// excluding the candidate itself) and rejects the write when any top-level
// interval overlaps. Runs inside the caller's transaction.
func (r *MongoShiftRepo) checkOverlap(sc mongo.SessionContext, candidate *models.Shift) error {
	filter := bson.M{
		"barberId": candidate.BarberID,
		"date":     candidate.Date,
		"id":       bson.M{"$ne": candidate.ID},
	}
	cursor, err := r.coll.Find(sc, filter)
	if err != nil {
		return fmt.Errorf("failed to load sibling shifts: %w", err)
	}
	defer cursor.Close(sc)

	var siblings []models.Shift
	if err := cursor.All(sc, &siblings); err != nil {
		return fmt.Errorf("failed to decode sibling shifts: %w", err)
	}
	for _, s := range siblings {
		if candidate.Interval.Overlaps(s.Interval) {
			return repository.ErrShiftOverlap
		}
	}
	return nil
}

func (r *MongoShiftRepo) withTxn(ctx context.Context, fn func(mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
