package conflict

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	userRepo "studycompass/database/repository/user"
	"studycompass/models"
)

func block(startHour, endHour int) models.TimeBlock {
	// Monday 2026-08-31.
	return models.TimeBlock{
		Start: time.Date(2026, 8, 31, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 31, endHour, 0, 0, 0, time.UTC),
	}
}

var allPrefs = models.ConflictPrefs{BlockRSVPEvents: true, BlockClasses: true, BlockClubMeetings: true}

type fakeEvents struct {
	events []models.Event
	err    error
	calls  int
}

func (f *fakeEvents) ApprovedByRoomInRange(_ context.Context, _ string, _, _ time.Time) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEvents) RSVPedInRange(_ context.Context, _ string, start, end time.Time) ([]models.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if ev.Start.Before(end) && ev.End.After(start) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeUsers struct {
	sched    models.WeeklySchedule
	schedErr error
}

func (f *fakeUsers) Create(_ context.Context, _ *models.User) error { return nil }
func (f *fakeUsers) GetByID(_ context.Context, _ string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (f *fakeUsers) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, userRepo.ErrNotFound
}
func (f *fakeUsers) GetEnrolledSchedule(_ context.Context, _ string) (models.WeeklySchedule, error) {
	if f.schedErr != nil {
		return models.WeeklySchedule{}, f.schedErr
	}
	return f.sched, nil
}

type fakeOrgs struct {
	orgs []models.Org
	err  error
}

func (f *fakeOrgs) ByMember(_ context.Context, _ string) ([]models.Org, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orgs, nil
}

func newService(events *fakeEvents, users *fakeUsers, orgs *fakeOrgs) *DefaultConflictService {
	return NewDefaultConflictService(events, users, orgs)
}

func TestDetect_RSVPEventConflict(t *testing.T) {
	events := &fakeEvents{events: []models.Event{
		{ID: "e1", Title: "Hackathon Kickoff", Start: block(12, 13).Start, End: block(12, 13).End},
	}}
	svc := newService(events, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, &fakeOrgs{})

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 14)}, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("want 1 conflict, got %d: %+v", len(records), records)
	}
	if records[0].Type != models.ConflictRSVPEvent || records[0].Reference != "e1" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestDetect_ClassConflictUsesEnrolledSchedule(t *testing.T) {
	users := &fakeUsers{sched: models.WeeklySchedule{
		Monday: []models.ClassInterval{{Label: "Operating Systems", Start: 720, End: 780}},
	}}
	svc := newService(&fakeEvents{}, users, &fakeOrgs{})

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 13)}, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Type != models.ConflictClass {
		t.Fatalf("want one class conflict, got %+v", records)
	}
	if records[0].Reference != "Operating Systems" {
		t.Errorf("reference: want class label, got %q", records[0].Reference)
	}
}

func TestDetect_ClubMeetingRequiresWeekdayMatch(t *testing.T) {
	orgs := &fakeOrgs{orgs: []models.Org{
		{ID: "o1", Name: "Chess Club", Meeting: &models.MeetingSlot{Weekday: time.Monday, Start: 720, End: 780}},
		{ID: "o2", Name: "Robotics", Meeting: &models.MeetingSlot{Weekday: time.Tuesday, Start: 720, End: 780}},
		{ID: "o3", Name: "No Meetings", Meeting: nil},
	}}
	svc := newService(&fakeEvents{}, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, orgs)

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 13)}, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Reference != "o1" {
		t.Fatalf("want only the Monday meeting to conflict, got %+v", records)
	}
}

func TestDetect_MultipleSourcesAreAdditive(t *testing.T) {
	events := &fakeEvents{events: []models.Event{
		{ID: "e1", Title: "Career Fair", Start: block(12, 13).Start, End: block(12, 13).End},
	}}
	users := &fakeUsers{sched: models.WeeklySchedule{
		Monday: []models.ClassInterval{{Label: "Linear Algebra", Start: 730, End: 790}},
	}}
	orgs := &fakeOrgs{orgs: []models.Org{
		{ID: "o1", Name: "Chess Club", Meeting: &models.MeetingSlot{Weekday: time.Monday, Start: 700, End: 760}},
	}}
	svc := newService(events, users, orgs)

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 13)}, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want 3 conflicts (one per source), got %d: %+v", len(records), records)
	}
	types := []string{records[0].Type, records[1].Type, records[2].Type}
	want := []string{models.ConflictRSVPEvent, models.ConflictClass, models.ConflictClubMeeting}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("source order: want %v, got %v", want, types)
	}
}

func TestDetect_PrefsDisableSources(t *testing.T) {
	events := &fakeEvents{events: []models.Event{
		{ID: "e1", Title: "Career Fair", Start: block(12, 13).Start, End: block(12, 13).End},
	}}
	svc := newService(events, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, &fakeOrgs{})

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 13)},
		models.ConflictPrefs{BlockRSVPEvents: false, BlockClasses: true, BlockClubMeetings: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("disabled source still produced conflicts: %+v", records)
	}
	if events.calls != 0 {
		t.Errorf("disabled source was queried %d times", events.calls)
	}
}

func TestDetect_FailingSourceContributesNothing(t *testing.T) {
	events := &fakeEvents{err: errors.New("mongo timeout")}
	orgs := &fakeOrgs{orgs: []models.Org{
		{ID: "o1", Name: "Chess Club", Meeting: &models.MeetingSlot{Weekday: time.Monday, Start: 720, End: 780}},
	}}
	svc := newService(events, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, orgs)

	records, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{block(12, 13)}, allPrefs)
	if err != nil {
		t.Fatalf("best-effort detection must not fail the request: %v", err)
	}
	if len(records) != 1 || records[0].Type != models.ConflictClubMeeting {
		t.Fatalf("want only the club conflict, got %+v", records)
	}
}

func TestDetect_InvalidBlockRejected(t *testing.T) {
	svc := newService(&fakeEvents{}, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, &fakeOrgs{})

	bad := models.TimeBlock{Start: block(13, 14).Start, End: block(12, 13).Start}
	_, err := svc.Detect(context.Background(), "u1", []models.TimeBlock{bad}, allPrefs)
	if err == nil {
		t.Fatal("want error for start >= end")
	}
}

func TestDetect_Idempotent(t *testing.T) {
	events := &fakeEvents{events: []models.Event{
		{ID: "e1", Title: "Career Fair", Start: block(12, 13).Start, End: block(12, 13).End},
	}}
	svc := newService(events, &fakeUsers{schedErr: userRepo.ErrNoSchedule}, &fakeOrgs{})

	blocks := []models.TimeBlock{block(12, 13)}
	first, err := svc.Detect(context.Background(), "u1", blocks, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Detect(context.Background(), "u1", blocks, allPrefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different output:\n%+v\n%+v", first, second)
	}
}
