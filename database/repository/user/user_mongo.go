package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	userColl     *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoUserRepo{
		userColl:     db.Collection("users"),
		scheduleColl: db.Collection("schedules"),
	}
}

// Create inserts a new user document.
func (repo *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.userColl.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user document by ID.
func (repo *MongoUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	filter := bson.M{"id": userID}
	if err := repo.userColl.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user with id %s: %w", userID, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user document by email.
func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	filter := bson.M{"email": email}
	if err := repo.userColl.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetEnrolledSchedule fetches the class schedule the user is enrolled in.
// Users with no schedule document get ErrNoSchedule.
func (repo *MongoUserRepo) GetEnrolledSchedule(ctx context.Context, userID string) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.ScheduleDoc
	filter := bson.M{"owner_id": userID}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.WeeklySchedule{}, ErrNoSchedule
		}
		return models.WeeklySchedule{}, fmt.Errorf("error fetching schedule for user %s: %w", userID, err)
	}
	return doc.Weekly, nil
}
