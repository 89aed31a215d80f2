package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazesolver/domain"
	"github.com/beka-birhanu/mazesolver/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout  = time.Second
	queryTimeout = 2 * time.Second
)

var (
	ErrNilRun      = errors.New("run is nil")
	ErrRunNotFound = errors.New("run not found")
	ErrUnexpected  = errors.New("unexpected error")
)

// RunRepo handles the persistence of run summaries.
type RunRepo struct {
	collection *mongo.Collection
}

var _ i.RunRepo = &RunRepo{}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index used to list runs of a maze by step count.
func (r *RunRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "mazeFingerprint", Value: 1}, {Key: "steps", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	return nil
}

// Record inserts or updates a run in the repository.
// If the run already exists, it updates the existing record.
// If the run does not exist, it adds a new record.
func (r *RunRepo) Record(ctx context.Context, run *dmn.Run) error {
	if run == nil {
		return ErrNilRun
	}

	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": run.ID}
	update := bson.M{"$set": runFields(run)}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	return nil
}

// ByID retrieves a run by its ID.
// Returns an error if the run is not found or if an unexpected error occurs.
func (r *RunRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var run dmn.Run
	if err := r.collection.FindOne(ctx, filter).Decode(&run); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	return &run, nil
}

// ByMaze retrieves up to limit runs of one maze, fewest steps first.
// A non-positive limit returns every run.
func (r *RunRepo) ByMaze(ctx context.Context, fingerprint string, limit int64) ([]*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"mazeFingerprint": fingerprint}
	opts := byMazeOptions(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	defer cursor.Close(ctx)

	runs := make([]*dmn.Run, 0)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	return runs, nil
}

// runFields lists every stored field except the id.
func runFields(run *dmn.Run) bson.M {
	return bson.M{
		"mazeName":        run.MazeName,
		"mazeFingerprint": run.MazeFingerprint,
		"algorithm":       run.Algorithm,
		"steps":           run.Steps,
		"moves":           run.Moves,
		"maxSteps":        run.MaxSteps,
		"found":           run.Found,
		"startedAt":       run.StartedAt,
		"duration":        run.Duration,
		"updatedAt":       time.Now(),
	}
}

func byMazeOptions(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "found", Value: -1}, {Key: "steps", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
