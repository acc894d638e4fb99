package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	roomColl     *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoRoomRepo constructs a new instance of MongoRoomRepo.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoRoomRepo{
		roomColl:     db.Collection("rooms"),
		scheduleColl: db.Collection("schedules"),
	}
}

// GetByID retrieves a room document by ID.
func (repo *MongoRoomRepo) GetByID(ctx context.Context, roomID string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	filter := bson.M{"id": roomID}
	if err := repo.roomColl.FindOne(ctx, filter).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching room with id %s: %w", roomID, err)
	}
	return &room, nil
}

// List retrieves all rooms.
func (repo *MongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.roomColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

// GetWeeklySchedule fetches the recurring class schedule owned by a room.
// Rooms with no schedule document are free all week.
func (repo *MongoRoomRepo) GetWeeklySchedule(ctx context.Context, roomID string) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.ScheduleDoc
	filter := bson.M{"owner_id": roomID}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.WeeklySchedule{}, nil
		}
		return models.WeeklySchedule{}, fmt.Errorf("error fetching schedule for room %s: %w", roomID, err)
	}
	return doc.Weekly, nil
}
