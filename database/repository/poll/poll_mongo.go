package pollRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studycompass/database"
	"studycompass/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPollRepo implements PollRepository using MongoDB. Responses are
// embedded in the poll document; one poll's responses are always read and
// ranked together.
type MongoPollRepo struct {
	pollColl *mongo.Collection
}

// pollDoc is the stored shape of a poll plus its embedded responses.
type pollDoc struct {
	models.Poll `bson:",inline"`
	Responses   []models.PollResponse `bson:"responses"`
}

// NewMongoPollRepo constructs a new instance of MongoPollRepo.
func NewMongoPollRepo() PollRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoPollRepo{
		pollColl: db.Collection("polls"),
	}
}

// Create inserts a new poll document with no responses.
func (repo *MongoPollRepo) Create(ctx context.Context, poll *models.Poll) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := pollDoc{Poll: *poll, Responses: []models.PollResponse{}}
	if _, err := repo.pollColl.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating poll: %w", err)
	}
	return nil
}

// GetByID retrieves a poll document by ID.
func (repo *MongoPollRepo) GetByID(ctx context.Context, pollID string) (*models.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc pollDoc
	filter := bson.M{"id": pollID}
	if err := repo.pollColl.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching poll with id %s: %w", pollID, err)
	}
	return &doc.Poll, nil
}

// AddResponse appends one participant's response to the poll.
func (repo *MongoPollRepo) AddResponse(ctx context.Context, pollID string, resp models.PollResponse) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": pollID, "closed": false}
	update := bson.M{"$push": bson.M{"responses": resp}}
	res, err := repo.pollColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error adding response to poll %s: %w", pollID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetResponses returns the poll's responses in submission order.
func (repo *MongoPollRepo) GetResponses(ctx context.Context, pollID string) ([]models.PollResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc pollDoc
	filter := bson.M{"id": pollID}
	if err := repo.pollColl.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching responses for poll %s: %w", pollID, err)
	}
	return doc.Responses, nil
}
