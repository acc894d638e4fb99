package conflict

import (
	"context"
	"fmt"

	eventRepo "studycompass/database/repository/event"
	orgRepo "studycompass/database/repository/org"
	userRepo "studycompass/database/repository/user"
	"studycompass/models"
	"studycompass/utils"

	"go.uber.org/zap"
)

// DefaultConflictService implements ConflictService over a fixed set of
// sources. Detection is read-only and best-effort: a source that cannot be
// evaluated is logged and contributes nothing, and identical inputs against
// an unchanged store always produce identical output.
type DefaultConflictService struct {
	Sources []Source
}

// NewDefaultConflictService wires the three standard sources.
func NewDefaultConflictService(events eventRepo.EventRepository, users userRepo.UserRepository, orgs orgRepo.OrgRepository) *DefaultConflictService {
	return &DefaultConflictService{
		Sources: []Source{
			&RSVPEventSource{Events: events},
			&ClassSource{Users: users},
			&ClubMeetingSource{Orgs: orgs},
		},
	}
}

// Detect checks every candidate block against every enabled source.
func (s *DefaultConflictService) Detect(ctx context.Context, userID string, blocks []models.TimeBlock, prefs models.ConflictPrefs) ([]models.ConflictRecord, error) {
	logger := utils.GetLogger()

	for i, block := range blocks {
		if !block.Start.Before(block.End) {
			return nil, fmt.Errorf("block %d: start must be before end", i+1)
		}
	}

	records := []models.ConflictRecord{}
	for _, block := range blocks {
		for _, src := range s.Sources {
			if !enabled(prefs, src.Name()) {
				continue
			}
			found, err := src.Evaluate(ctx, userID, block)
			if err != nil {
				logger.Warn("conflict source unavailable, skipping",
					zap.String("source", src.Name()),
					zap.String("userID", userID),
					zap.Time("blockStart", block.Start),
					zap.Error(err))
				continue
			}
			records = append(records, found...)
		}
	}
	return records, nil
}

func enabled(prefs models.ConflictPrefs, source string) bool {
	switch source {
	case models.ConflictRSVPEvent:
		return prefs.BlockRSVPEvents
	case models.ConflictClass:
		return prefs.BlockClasses
	case models.ConflictClubMeeting:
		return prefs.BlockClubMeetings
	default:
		return false
	}
}
