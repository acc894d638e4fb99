package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	pollRepo "studycompass/database/repository/poll"
	"studycompass/models"
)

type fakePollRepo struct {
	polls     map[string]*models.Poll
	responses map[string][]models.PollResponse
	added     int
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{
		polls:     map[string]*models.Poll{},
		responses: map[string][]models.PollResponse{},
	}
}

func (f *fakePollRepo) Create(_ context.Context, p *models.Poll) error {
	f.polls[p.ID] = p
	return nil
}

func (f *fakePollRepo) GetByID(_ context.Context, pollID string) (*models.Poll, error) {
	p, ok := f.polls[pollID]
	if !ok {
		return nil, pollRepo.ErrNotFound
	}
	return p, nil
}

func (f *fakePollRepo) AddResponse(_ context.Context, pollID string, resp models.PollResponse) error {
	if _, ok := f.polls[pollID]; !ok {
		return pollRepo.ErrNotFound
	}
	f.responses[pollID] = append(f.responses[pollID], resp)
	f.added++
	return nil
}

func (f *fakePollRepo) GetResponses(_ context.Context, pollID string) ([]models.PollResponse, error) {
	if _, ok := f.polls[pollID]; !ok {
		return nil, pollRepo.ErrNotFound
	}
	return f.responses[pollID], nil
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := &DefaultPollService{Repo: newFakePollRepo()}
	if _, err := svc.Create(context.Background(), "", "u1"); err == nil {
		t.Fatal("expected an error for an empty title")
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := newFakePollRepo()
	svc := &DefaultPollService{Repo: repo}

	created, err := svc.Create(context.Background(), "Study group kickoff", "u1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated poll ID")
	}
	if _, ok := repo.polls[created.ID]; !ok {
		t.Fatal("poll was not persisted")
	}
}

func TestRespondRejectsInvalidBlocks(t *testing.T) {
	repo := newFakePollRepo()
	repo.polls["p1"] = &models.Poll{ID: "p1", Title: "Kickoff"}
	svc := &DefaultPollService{Repo: repo}

	past := time.Now().Add(-time.Hour)
	err := svc.Respond(context.Background(), "p1", models.PollResponse{
		DisplayName:    "Ada",
		SelectedBlocks: []models.TimeBlock{{Start: past, End: past.Add(time.Hour)}},
	})
	if err == nil {
		t.Fatal("expected past block to be rejected")
	}
	if repo.added != 0 {
		t.Fatalf("rejected response must not be stored, got %d stored", repo.added)
	}
}

func TestRespondRejectsAnonymousEmptyResponse(t *testing.T) {
	repo := newFakePollRepo()
	repo.polls["p1"] = &models.Poll{ID: "p1", Title: "Kickoff"}
	svc := &DefaultPollService{Repo: repo}

	err := svc.Respond(context.Background(), "p1", models.PollResponse{})
	if err == nil {
		t.Fatal("expected a response without identity to be rejected")
	}
}

func TestRespondUnknownPoll(t *testing.T) {
	svc := &DefaultPollService{Repo: newFakePollRepo()}

	future := time.Now().Add(time.Hour)
	err := svc.Respond(context.Background(), "missing", models.PollResponse{
		DisplayName:    "Ada",
		SelectedBlocks: []models.TimeBlock{{Start: future, End: future.Add(time.Hour)}},
	})
	if !errors.Is(err, pollRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOverlapsEndToEnd(t *testing.T) {
	repo := newFakePollRepo()
	repo.polls["p1"] = &models.Poll{ID: "p1", Title: "Kickoff"}
	svc := &DefaultPollService{Repo: repo}

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(time.Hour)
	for _, name := range []string{"Ada", "Grace"} {
		err := svc.Respond(context.Background(), "p1", models.PollResponse{
			DisplayName:    name,
			SelectedBlocks: []models.TimeBlock{{Start: start, End: end}},
		})
		if err != nil {
			t.Fatalf("Respond(%s) returned error: %v", name, err)
		}
	}

	windows, err := svc.Overlaps(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Overlaps returned error: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected one shared window, got %d", len(windows))
	}
	if len(windows[0].Participants) != 2 {
		t.Fatalf("expected 2 participants, got %v", windows[0].Participants)
	}
}
