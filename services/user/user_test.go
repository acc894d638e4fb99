package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	userRepo "studycompass/database/repository/user"
	"studycompass/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[string]*models.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetEnrolledSchedule(_ context.Context, _ string) (models.WeeklySchedule, error) {
	return models.WeeklySchedule{}, userRepo.ErrNoSchedule
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ada", "ada@example.edu", "correct horse")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("expected a session token on registration")
	}
	if reg.User.PasswordHash == "correct horse" {
		t.Fatal("password must not be stored in the clear")
	}

	logged, err := svc.Login(ctx, "ada@example.edu", "correct horse")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if logged.User.ID != reg.User.ID {
		t.Fatalf("login returned user %q, registered %q", logged.User.ID, reg.User.ID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.edu", "correct horse"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, err := svc.Register(ctx, "Imposter", "ada@example.edu", "battery staple")
	if err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	if _, err := svc.Register(context.Background(), "Ada", "ada@example.edu", "short"); err == nil {
		t.Fatal("expected short password to be rejected")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.edu", "correct horse"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Login(ctx, "ada@example.edu", "wrong horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	if _, err := svc.Login(context.Background(), "nobody@example.edu", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
