package pollRepo

import (
	"context"
	"errors"

	"studycompass/models"
)

// ErrNotFound is returned when a poll does not exist.
var ErrNotFound = errors.New("poll not found")

// PollRepository stores scheduling polls and their responses.
type PollRepository interface {
	Create(ctx context.Context, poll *models.Poll) error
	GetByID(ctx context.Context, pollID string) (*models.Poll, error)
	AddResponse(ctx context.Context, pollID string, resp models.PollResponse) error
	// GetResponses returns every response recorded for one poll, in
	// submission order.
	GetResponses(ctx context.Context, pollID string) ([]models.PollResponse, error)
}
