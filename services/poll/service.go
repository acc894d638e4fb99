package poll

import (
	"context"
	"fmt"
	"time"

	pollRepo "studycompass/database/repository/poll"
	"studycompass/models"

	"github.com/google/uuid"
)

// PollService manages scheduling polls and ranks their responses.
type PollService interface {
	Create(ctx context.Context, title, creatorID string) (*models.Poll, error)
	Respond(ctx context.Context, pollID string, resp models.PollResponse) error
	// Overlaps returns the poll's ranked overlap windows.
	Overlaps(ctx context.Context, pollID string) ([]models.OverlapWindow, error)
}

// DefaultPollService implements PollService.
type DefaultPollService struct {
	Repo pollRepo.PollRepository
}

// Create opens a new scheduling poll.
func (s *DefaultPollService) Create(ctx context.Context, title, creatorID string) (*models.Poll, error) {
	if title == "" {
		return nil, fmt.Errorf("poll title is required")
	}
	poll := &models.Poll{
		ID:        uuid.New().String(),
		Title:     title,
		CreatorID: creatorID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

// Respond validates a participant's blocks and records the response.
func (s *DefaultPollService) Respond(ctx context.Context, pollID string, resp models.PollResponse) error {
	if resp.DisplayName == "" && resp.ParticipantID == "" {
		return fmt.Errorf("response needs a display name or participant id")
	}
	if len(resp.SelectedBlocks) == 0 {
		return fmt.Errorf("response needs at least one selected block")
	}
	if errs := ValidateBlocks(resp.SelectedBlocks, time.Now()); len(errs) > 0 {
		return fmt.Errorf("invalid blocks: %s", errs[0].Message)
	}
	return s.Repo.AddResponse(ctx, pollID, resp)
}

// Overlaps loads the poll's responses and ranks their common windows.
func (s *DefaultPollService) Overlaps(ctx context.Context, pollID string) ([]models.OverlapWindow, error) {
	responses, err := s.Repo.GetResponses(ctx, pollID)
	if err != nil {
		return nil, err
	}
	return RankOverlaps(responses), nil
}
