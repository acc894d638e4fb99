package userRepo

import (
	"context"
	"errors"

	"studycompass/models"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrNoSchedule is returned when a user has no enrolled class schedule on
// record. The class-schedule integration is optional: conflict detection
// treats this as an empty source, not a failure.
var ErrNoSchedule = errors.New("no enrolled schedule for user")

// UserRepository stores platform users and their enrolled class schedules.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetEnrolledSchedule(ctx context.Context, userID string) (models.WeeklySchedule, error)
}
