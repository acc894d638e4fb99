package conflict

import (
	"context"

	"studycompass/models"
)

// Source is one independent origin of scheduling conflicts (RSVP'd events,
// enrolled classes, club meetings). A source that has no data for a user
// returns an empty slice, not an error; errors are reserved for lookups that
// actually failed.
type Source interface {
	// Name identifies the source; it matches a ConflictPrefs toggle.
	Name() string
	Evaluate(ctx context.Context, userID string, block models.TimeBlock) ([]models.ConflictRecord, error)
}

// ConflictService checks candidate time blocks against a user's existing
// commitments.
type ConflictService interface {
	// Detect evaluates every enabled source against every block and
	// concatenates the results. A block can collect conflicts from several
	// sources at once; nothing is deduplicated.
	Detect(ctx context.Context, userID string, blocks []models.TimeBlock, prefs models.ConflictPrefs) ([]models.ConflictRecord, error)
}
