package poll

import (
	"fmt"
	"time"

	"studycompass/models"
)

// MinBlockDuration is the shortest selectable availability block.
const MinBlockDuration = 15 * time.Minute

// ValidateBlocks checks candidate blocks against the submission rules. Rules
// are evaluated independently and all violations are reported, each naming
// the 1-based position of the offending block. The duration rule only applies
// to blocks that are ordered at all.
func ValidateBlocks(blocks []models.TimeBlock, now time.Time) []models.ValidationError {
	var errs []models.ValidationError
	for i, b := range blocks {
		pos := i + 1
		if !b.Start.Before(b.End) {
			errs = append(errs, models.ValidationError{
				Block:   pos,
				Message: fmt.Sprintf("block %d: start time must be before end time", pos),
			})
		}
		if !b.Start.After(now) {
			errs = append(errs, models.ValidationError{
				Block:   pos,
				Message: fmt.Sprintf("block %d: start time must be in the future", pos),
			})
		}
		if b.End.After(b.Start) && b.End.Sub(b.Start) < MinBlockDuration {
			errs = append(errs, models.ValidationError{
				Block:   pos,
				Message: fmt.Sprintf("block %d: must be at least %d minutes long", pos, int(MinBlockDuration.Minutes())),
			})
		}
	}
	return errs
}
