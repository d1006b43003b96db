package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-server/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-server/internal/domain/repository"
	"github.com/oksasatya/go-shop-server/pkg/helpers"
)

var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountCreatedEvent is published to the broker after a successful
// signup for downstream consumers (welcome mail, analytics).
type AccountCreatedEvent struct {
	Event      string    `json:"event"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AccountService creates accounts and authenticates login attempts.
type AccountService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
	Events *helpers.RabbitPublisher
}

func NewAccountService(r repo.UserRepository, logger *logrus.Logger, events *helpers.RabbitPublisher) *AccountService {
	return &AccountService{Repo: r, Logger: logger, Events: events}
}

type CreateAccountInput struct {
	Name      string
	Lastname  string
	Email     string
	Password  string
	Birthdate *time.Time
	Privacy   bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new user. The email pre-check and the unique
// index both map to ErrDuplicateAccount: a concurrent signup that slips
// past the lookup is caught at insert time. Exactly one row is written on
// success and none on any failure path.
func (s *AccountService) CreateAccount(ctx context.Context, in CreateAccountInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		s.logError("account lookup failed", err, email)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		s.logError("password hash failed", err, email)
		return nil, err
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Privacy:      in.Privacy,
		Profile: entity.Profile{
			Name:      in.Name,
			Lastname:  in.Lastname,
			Birthdate: in.Birthdate,
		},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrDuplicateAccount
		}
		s.logError("account insert failed", err, email)
		return nil, err
	}

	// Fail-soft: a broker outage must not fail the signup.
	if s.Events != nil {
		ev := AccountCreatedEvent{Event: "account_created", UserID: u.ID, Email: u.Email, OccurredAt: time.Now().UTC()}
		if err := s.Events.PublishJSON(ctx, ev); err != nil {
			s.logError("account event publish failed", err, email)
		}
	}

	return u, nil
}

// Authenticate checks email/password. Unknown email and wrong password
// both return ErrInvalidCredentials so callers cannot tell them apart.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logError("account lookup failed", err, email)
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AccountService) logError(msg string, err error, email string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Error(msg)
	}
}
