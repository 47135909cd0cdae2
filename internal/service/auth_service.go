package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
)

// AdminSubject is the fixed identity of the single administrator.
const AdminSubject = "1"

// placeholderHash is compared against when the username is wrong so both
// failure paths spend one bcrypt comparison.
var placeholderHash, _ = bcrypt.GenerateFromPassword([]byte("calo-placeholder"), bcrypt.DefaultCost)

// SessionClaims are embedded in every session token.
type SessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      dto.SessionUser
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*Session, error)
	Verify(token string) (*SessionClaims, error)
}

type authService struct {
	cfg *config.Config
	now func() time.Time
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) configured() bool {
	return s.cfg.AuthConfigured() && s.cfg.SessionSecret != ""
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*Session, error) {
	if !s.configured() {
		log.Error().Msg("login rejected: ADMIN_USERNAME, ADMIN_PASSWORD_HASH or SESSION_SECRET not set")
		return nil, ErrConfiguration
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	hash := []byte(s.cfg.AdminPasswordHash)
	if !userOK {
		hash = placeholderHash
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		log.Error().Err(err).Msg("login: stored password hash is not a valid bcrypt hash")
	}
	if !userOK || err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	exp := now.Add(s.cfg.SessionTTL())
	claims := SessionClaims{
		Name: s.cfg.AdminUsername,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, err
	}

	log.Info().Str("user", s.cfg.AdminUsername).Time("expires_at", exp).Msg("admin login")
	return &Session{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.SessionUser{ID: AdminSubject, Name: s.cfg.AdminUsername},
	}, nil
}

// Verify checks signature, expiry and that the token names the configured admin.
func (s *authService) Verify(token string) (*SessionClaims, error) {
	if !s.configured() {
		return nil, ErrConfiguration
	}
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject != AdminSubject || claims.Name != s.cfg.AdminUsername {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
