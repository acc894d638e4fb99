package poll

import (
	"strings"
	"testing"
	"time"

	"studycompass/models"
)

func TestValidateBlocks_AllRulesPass(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	blocks := []models.TimeBlock{
		{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},
	}
	if errs := ValidateBlocks(blocks, now); len(errs) != 0 {
		t.Fatalf("want no errors, got %+v", errs)
	}
}

func TestValidateBlocks_ZeroLengthPastBlockGetsTwoErrors(t *testing.T) {
	// start == end in the past violates ordering and future-time, but not
	// the duration rule.
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	blocks := []models.TimeBlock{{Start: past, End: past}}

	errs := ValidateBlocks(blocks, now)
	if len(errs) != 2 {
		t.Fatalf("want exactly 2 errors, got %d: %+v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Block != 1 {
			t.Errorf("block index: want 1, got %d", e.Block)
		}
	}
	if !strings.Contains(errs[0].Message, "before end") {
		t.Errorf("first error should be the ordering rule, got %q", errs[0].Message)
	}
	if !strings.Contains(errs[1].Message, "future") {
		t.Errorf("second error should be the future-time rule, got %q", errs[1].Message)
	}
}

func TestValidateBlocks_TooShort(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	blocks := []models.TimeBlock{
		{Start: now.Add(time.Hour), End: now.Add(time.Hour + 10*time.Minute)},
	}
	errs := ValidateBlocks(blocks, now)
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %+v", errs)
	}
	if !strings.Contains(errs[0].Message, "15 minutes") {
		t.Errorf("want duration message, got %q", errs[0].Message)
	}
}

func TestValidateBlocks_IndexesAreOneBased(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	blocks := []models.TimeBlock{
		{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},     // valid
		{Start: now.Add(3 * time.Hour), End: now.Add(2 * time.Hour)}, // reversed
	}
	errs := ValidateBlocks(blocks, now)
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %+v", errs)
	}
	if errs[0].Block != 2 {
		t.Errorf("block index: want 2, got %d", errs[0].Block)
	}
	if !strings.Contains(errs[0].Message, "block 2") {
		t.Errorf("message should reference block 2, got %q", errs[0].Message)
	}
}

func TestValidateBlocks_StartExactlyNowIsNotFuture(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	blocks := []models.TimeBlock{{Start: now, End: now.Add(time.Hour)}}
	errs := ValidateBlocks(blocks, now)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "future") {
		t.Fatalf("start == now must violate the future rule, got %+v", errs)
	}
}
