package conflict

import (
	"context"
	"errors"
	"fmt"

	eventRepo "studycompass/database/repository/event"
	orgRepo "studycompass/database/repository/org"
	userRepo "studycompass/database/repository/user"
	"studycompass/models"
	"studycompass/services/availability"
)

// RSVPEventSource flags events the user has committed to attend.
type RSVPEventSource struct {
	Events eventRepo.EventRepository
}

func (s *RSVPEventSource) Name() string { return models.ConflictRSVPEvent }

func (s *RSVPEventSource) Evaluate(ctx context.Context, userID string, block models.TimeBlock) ([]models.ConflictRecord, error) {
	events, err := s.Events.RSVPedInRange(ctx, userID, block.Start, block.End)
	if err != nil {
		return nil, err
	}
	var records []models.ConflictRecord
	for _, ev := range events {
		records = append(records, models.ConflictRecord{
			Type:      models.ConflictRSVPEvent,
			Reference: ev.ID,
			Reason: fmt.Sprintf("you RSVP'd to %q (%s – %s)",
				ev.Title,
				ev.Start.Format("Mon 3:04 PM"),
				ev.End.Format("3:04 PM")),
		})
	}
	return records, nil
}

// ClassSource flags the user's enrolled classes, reusing the same weekly
// schedule overlap test rooms use. The enrollment integration is optional;
// users without a schedule on record contribute nothing.
type ClassSource struct {
	Users userRepo.UserRepository
}

func (s *ClassSource) Name() string { return models.ConflictClass }

func (s *ClassSource) Evaluate(ctx context.Context, userID string, block models.TimeBlock) ([]models.ConflictRecord, error) {
	sched, err := s.Users.GetEnrolledSchedule(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNoSchedule) {
			return nil, nil
		}
		return nil, err
	}
	var records []models.ConflictRecord
	for _, iv := range availability.ClassConflicts(sched, block.Start, block.End) {
		records = append(records, models.ConflictRecord{
			Type:      models.ConflictClass,
			Reference: iv.Label,
			Reason:    fmt.Sprintf("you have %q at this time", iv.Label),
		})
	}
	return records, nil
}

// ClubMeetingSource flags recurring weekly meetings of clubs the user belongs
// to. A club has at most one weekly slot; a conflict needs the weekday to
// match and the minute ranges to overlap.
type ClubMeetingSource struct {
	Orgs orgRepo.OrgRepository
}

func (s *ClubMeetingSource) Name() string { return models.ConflictClubMeeting }

func (s *ClubMeetingSource) Evaluate(ctx context.Context, userID string, block models.TimeBlock) ([]models.ConflictRecord, error) {
	orgs, err := s.Orgs.ByMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	blockStart := availability.MinuteOfDay(block.Start)
	blockEnd := availability.MinuteOfDay(block.End)

	var records []models.ConflictRecord
	for _, org := range orgs {
		m := org.Meeting
		if m == nil || m.Weekday != block.Start.Weekday() {
			continue
		}
		if availability.OverlapsMinutes(blockStart, blockEnd, m.Start, m.End) {
			records = append(records, models.ConflictRecord{
				Type:      models.ConflictClubMeeting,
				Reference: org.ID,
				Reason:    fmt.Sprintf("%s holds its weekly meeting at this time", org.Name),
			})
		}
	}
	return records, nil
}
