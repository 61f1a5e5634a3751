package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/felixgeelhaar/shopbazar/internal/events"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the password work factor
const DefaultBcryptCost = 10

var (
	ErrEmailExists  = errors.New("email already exists")
	ErrEmailMissing = errors.New("email is required")
	ErrTokenIssue   = errors.New("issue token")
)

// Repository defines the interface for credential storage
type Repository interface {
	// GetUserByEmail returns nil, nil when no user has the email
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// CreateUser stores the user and sets its ID. A uniqueness violation
	// on email returns domain.ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user *domain.User) error
}

// Service handles registration and token issuance
type Service struct {
	repo       Repository
	tokens     TokenManager
	publisher  events.Publisher
	bcryptCost int
	now        func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithBcryptCost overrides the password work factor
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithPublisher emits a user.registered event after each registration
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// NewService creates a new auth service
func NewService(repo Repository, tokens TokenManager, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		tokens:     tokens,
		publisher:  events.Nop{},
		bcryptCost: DefaultBcryptCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRequest contains registration data
type RegisterRequest struct {
	Name     string
	Email    string
	Password string // optional
}

// RegisterResult is the created user and its access token
type RegisterResult struct {
	User  *domain.User
	Token string
}

// Register creates a user account and issues a token for it.
// The user is not removed if token issuance fails afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, ErrEmailMissing
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &domain.User{
		Name:      req.Name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash := string(hashed)
		user.Password = &hash
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Claim())
	if err != nil {
		return nil, fmt.Errorf("%w for stored user %s: %w", ErrTokenIssue, user.ID.Hex(), err)
	}

	events.Emit(ctx, s.publisher, events.TypeUserRegistered, events.UserRegistered{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
	})

	return &RegisterResult{User: user, Token: token}, nil
}

// Authenticate verifies a raw token and returns its claim
func (s *Service) Authenticate(token string) (domain.SessionClaim, error) {
	if token == "" {
		return domain.SessionClaim{}, ErrInvalidToken
	}
	return s.tokens.Verify(token)
}
