package orgRepo

import (
	"context"
	"fmt"
	"time"

	"studycompass/database"
	"studycompass/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrgRepo implements OrgRepository using MongoDB.
type MongoOrgRepo struct {
	orgColl *mongo.Collection
}

// NewMongoOrgRepo constructs a new instance of MongoOrgRepo.
func NewMongoOrgRepo() OrgRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoOrgRepo{
		orgColl: db.Collection("orgs"),
	}
}

// ByMember retrieves every org the user belongs to.
func (repo *MongoOrgRepo) ByMember(ctx context.Context, userID string) ([]models.Org, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"members": userID}
	cursor, err := repo.orgColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching orgs for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var orgs []models.Org
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, fmt.Errorf("error decoding orgs: %w", err)
	}
	return orgs, nil
}
