package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rkp0912/Trello-quora/internal/auth"
	"github.com/rkp0912/Trello-quora/internal/config"
	"github.com/rkp0912/Trello-quora/internal/domain"
	"github.com/rkp0912/Trello-quora/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokens      *auth.TokenCodec
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      auth.NewTokenCodec(),
		cfg:         cfg,
	}
}

type SignupInput struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Country       string
	AboutMe       string
	DOB           datatypes.Date
	ContactNumber string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if err := s.checkTaken(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	// An omitted password falls back to a fixed default rather than
	// failing signup.
	password := input.Password
	if password == "" {
		password = "password"
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UUID:          uuid.New(),
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  auth.HashPassword(password, salt),
		Salt:          salt,
		Role:          domain.RoleNonAdmin,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Country:       input.Country,
		AboutMe:       input.AboutMe,
		DOB:           input.DOB,
		ContactNumber: input.ContactNumber,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can win the race between the pre-checks
		// and the insert; the unique constraints decide, we only pick
		// the right conflict code after the fact.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if takenErr := s.checkTaken(ctx, input.Username, input.Email); takenErr != nil {
				return nil, takenErr
			}
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) checkTaken(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Authenticate verifies a username/password pair and opens a new session.
// Exactly one user_sessions row is written per successful call; nothing is
// written on failure.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.UserSession, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownUsername
		}
		return nil, err
	}

	digest := auth.HashPassword(password, user.Salt)
	if !auth.DigestsEqual(digest, user.PasswordHash) {
		return nil, domain.ErrPasswordMismatch
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	// The signing secret is the stored password digest; the token only
	// needs to be opaque and unique, validation happens by store lookup.
	token, err := s.tokens.Issue([]byte(user.PasswordHash), user.UUID.String(), now, expiresAt)
	if err != nil {
		return nil, err
	}

	session := &domain.UserSession{
		UUID:        uuid.New(),
		UserID:      user.ID,
		AccessToken: token,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	session.User = *user
	return session, nil
}

// Resolve is the session guard: it maps a bearer token to an active
// session or fails. Every protected operation goes through it.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.UserSession, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotSignedIn
		}
		return nil, err
	}

	if !session.Active() {
		return nil, domain.ErrSignedOut
	}

	if s.cfg.EnforceTokenExpiry && session.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// SignOut marks the session logged out and returns its owner. Logout is
// one-shot: a second call with the same token fails with the signed-out
// error, it never reports success twice.
func (s *AuthService) SignOut(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := s.sessionRepo.MarkSignedOut(ctx, token, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// A concurrent sign-out beat us to the update.
		return nil, domain.ErrSignedOut
	}

	session.LogoutAt = &now
	return &session.User, nil
}
