package eventRepo

import (
	"context"
	"fmt"
	"time"

	"studycompass/database"
	"studycompass/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	eventColl *mongo.Collection
}

// NewMongoEventRepo constructs a new instance of MongoEventRepo.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoEventRepo{
		eventColl: db.Collection("events"),
	}
}

// ApprovedByRoomInRange finds approved (or exempt) reservations of a room
// overlapping [start, end).
func (repo *MongoEventRepo) ApprovedByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id":    roomID,
		"deleted":    false,
		"status":     bson.M{"$in": []string{models.EventApproved, models.EventExempt}},
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	cursor, err := repo.eventColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping events for room %s: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}

// RSVPedInRange finds events overlapping [start, end) that the user has
// committed to with a "going" or "maybe" RSVP.
func (repo *MongoEventRepo) RSVPedInRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"deleted":    false,
		"status":     bson.M{"$in": []string{models.EventApproved, models.EventExempt}},
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
		"attendees": bson.M{
			"$elemMatch": bson.M{
				"user_id": userID,
				"status":  bson.M{"$in": []string{models.RSVPGoing, models.RSVPMaybe}},
			},
		},
	}
	cursor, err := repo.eventColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding RSVP'd events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}
	return events, nil
}
