package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/internal/utils"
	"github.com/sunway-travel/vacation-booking/models"
)

// authService implements AuthService on top of the user repository.
//
// Two expiry bounds govern every session. The signed credential carries an
// absolute expiry (TokenDuration) that never moves; the user row mirrors the
// credential with a sliding expiry (SessionWindow) that is pushed forward on
// every successful validation. A session is live only while both hold.
type authService struct {
	users store.UserRepository
	cfg   config.App
	log   *logger.Logger

	// now is injected so tests can pin the clock.
	now func() time.Time
}

// NewAuthService wires an AuthService over the given user repository.
func NewAuthService(users store.UserRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		users: users,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
	}
}

// RegisterUser creates a new "user"-role account with a bcrypt-hashed
// password. Returns ErrInvalidDataProvided on missing fields and passes
// store.ErrEmailAlreadyExists through unchanged.
func (s *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.FirstName == "" || user.LastName == "" || user.Email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("func", "RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Role = models.RoleUser

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("func", "RegisterUser").Str("email", user.Email).Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "RegisterUser").Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// Login verifies the email/password pair, mints a fresh signed credential and
// mirrors it on the user row with a full sliding window. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Error().Err(err).Str("func", "Login").Msg("error finding user")
		return models.LoginResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(s.cfg.TokenIssuer, user, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Error().Err(err).Str("func", "Login").Msg("error generating session token")
		return models.LoginResponse{}, ErrTokenCreationFailed
	}

	// A failed mirror write must not block the login: the credential is
	// already signed, and validation treats a stale mirror as an expired
	// session rather than a server fault.
	expire := s.now().Add(s.cfg.SessionWindow)
	if err = s.users.SetSessionToken(ctx, user.Email, token.SignedString, expire); err != nil {
		log.Error().Err(err).Str("func", "Login").Msg("error storing session token")
	}

	log.Info().Str("func", "Login").Int64("user_id", user.UserID).Msg("user logged in")
	return models.LoginResponse{
		Token: token.SignedString,
		User: models.SessionUser{
			ID:   user.UserID,
			Name: user.FirstName,
			Role: user.Role,
		},
	}, nil
}

// ValidateSession runs the full re-validation state machine for a presented
// raw credential:
//
//  1. Structural verification (signature, issuer, embedded expiry). On
//     failure the row mirroring this exact credential is cleared best-effort
//     and ErrSessionExpired is returned.
//  2. Account lookup by the credential's subject.
//  3. Session mirror checks: a null mirror or a mirror holding a different
//     credential means the session was revoked or superseded.
//  4. Sliding expiry check: a lapsed window clears the mirror and expires the
//     session.
//  5. Refresh in place: the stored expiry moves to now+window while the
//     credential string stays the same. A failed refresh is logged but does
//     not fail the validation; the next request simply finds the old expiry.
func (s *authService) ValidateSession(ctx context.Context, rawToken string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	token, err := s.ParseSession(ctx, rawToken)
	if err != nil {
		if _, clearErr := s.users.ClearSessionByToken(ctx, rawToken); clearErr != nil {
			log.Error().Err(clearErr).Str("func", "ValidateSession").Msg("error clearing stale session")
		}
		return models.SessionUser{}, ErrSessionExpired
	}

	user, err := s.users.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.SessionUser{}, ErrUserNotFound
		}
		log.Error().Err(err).Str("func", "ValidateSession").Msg("error finding user")
		return models.SessionUser{}, err
	}

	if !user.HasActiveSession() || user.Token.String != rawToken {
		return models.SessionUser{}, ErrNoActiveSession
	}

	if user.TokenExpire.Time.Before(s.now()) {
		if clearErr := s.users.ClearSessionByEmail(ctx, user.Email); clearErr != nil {
			log.Error().Err(clearErr).Str("func", "ValidateSession").Msg("error clearing expired session")
		}
		return models.SessionUser{}, ErrSessionExpired
	}

	expire := s.now().Add(s.cfg.SessionWindow)
	if err = s.users.SetSessionToken(ctx, user.Email, rawToken, expire); err != nil {
		log.Error().Err(err).Str("func", "ValidateSession").Msg("error refreshing session window")
	}

	return models.SessionUser{
		ID:   user.UserID,
		Name: user.FirstName,
		Role: user.Role,
	}, nil
}

// ParseSession checks only the credential itself: signature, issuer and
// embedded expiry. The session mirror is never consulted, so a revoked
// session still parses. Callers needing the full lifecycle use
// ValidateSession.
func (s *authService) ParseSession(_ context.Context, rawToken string) (*models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(rawToken, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return nil, ErrSessionExpired
	}

	return &token, nil
}
