package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
	"github.com/vedran77/skillswap/internal/repository"
	"golang.org/x/crypto/argon2"
)

var ErrPasswordTooShort = errors.New("password must be at least 6 characters")

const minPasswordLen = 6

// demoUserID identifies the fixed profile installed by the demo login flow.
var demoUserID = uuid.MustParse("a7c4f0de-1b2a-4c3d-8e5f-9d0a1b2c3d4e")

// SessionStore is the durable single-record storage behind the identity
// store. An absent record means logged out.
type SessionStore interface {
	Load() (*domain.User, error)
	Save(user *domain.User) error
	Clear() error
}

// AuthService is the identity store: it owns the single current session
// and writes every successful mutation through to the session store, so a
// restart resumes the session exactly as left.
//
// Authentication is deliberately mock: there is no credential roster to
// check against. Login accepts any email once the password clears the
// minimum length and installs a fixed demo profile.
type AuthService struct {
	userRepo  repository.UserRepository
	sessions  SessionStore
	jwtSecret []byte

	mu      sync.RWMutex
	current *domain.User
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, jwtSecret string) *AuthService {
	s := &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
	}

	// Restore a persisted session once, at startup.
	user, err := sessions.Load()
	if err != nil {
		log.Printf("auth: restoring session: %v", err)
	} else if user != nil {
		s.current = user
	}

	return s
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	Avatar        string   `json:"avatar"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  []string `json:"availability"`
}

type AuthResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// Login starts a session for the demo profile. The only recognized failure
// is a password under the minimum length; the session is left untouched in
// that case.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	if len(input.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := demoUser(input.Email)
	user.PasswordHash = hash

	if err := s.setCurrent(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{User: user, AccessToken: token}, nil
}

// Register synthesizes a new user, adds it to the roster and activates it
// as the current session. Email uniqueness is not enforced.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if len(input.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = "New User"
	}

	now := time.Now()
	user := &domain.User{
		ID:            uuid.New(),
		Name:          name,
		Email:         input.Email,
		Location:      input.Location,
		Bio:           input.Bio,
		Avatar:        input.Avatar,
		SkillsOffered: emptyIfNil(input.SkillsOffered),
		SkillsWanted:  emptyIfNil(input.SkillsWanted),
		Availability:  emptyIfNil(input.Availability),
		Rating:        0,
		ReviewCount:   0,
		IsPublic:      true,
		PasswordHash:  hash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := s.setCurrent(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{User: user, AccessToken: token}, nil
}

// Logout clears the session and its persisted copy. Idempotent.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return s.sessions.Clear()
}

type ProfileUpdate struct {
	Name          *string   `json:"name,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	SkillsOffered *[]string `json:"skills_offered,omitempty"`
	SkillsWanted  *[]string `json:"skills_wanted,omitempty"`
	Availability  *[]string `json:"availability,omitempty"`
	IsPublic      *bool     `json:"is_public,omitempty"`
}

// UpdateProfile merges the given fields into the current user and
// re-persists the session. Slice fields are fully replaced, not merged.
// No-op when no session is active.
func (s *AuthService) UpdateProfile(update ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}

	user := *s.current
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.SkillsOffered != nil {
		user.SkillsOffered = emptyIfNil(*update.SkillsOffered)
	}
	if update.SkillsWanted != nil {
		user.SkillsWanted = emptyIfNil(*update.SkillsWanted)
	}
	if update.Availability != nil {
		user.Availability = emptyIfNil(*update.Availability)
	}
	if update.IsPublic != nil {
		user.IsPublic = *update.IsPublic
	}
	user.UpdatedAt = time.Now()

	if err := s.sessions.Save(&user); err != nil {
		return nil, err
	}
	s.current = &user

	updated := user
	return &updated, nil
}

// CurrentUser returns a copy of the session's user record, or nil when
// logged out.
func (s *AuthService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *AuthService) setCurrent(user *domain.User) error {
	if err := s.sessions.Save(user); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return nil
}

func (s *AuthService) generateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// demoUser is the fixed profile the demo login installs regardless of the
// supplied credentials. Only the email follows the caller's input.
func demoUser(email string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:            demoUserID,
		Name:          "John Doe",
		Email:         email,
		Location:      "New York, NY",
		Avatar:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
		SkillsOffered: []string{"React", "TypeScript", "Node.js"},
		SkillsWanted:  []string{"Python", "Design", "Photography"},
		Availability:  []string{"Weekends", "Evenings"},
		Bio:           "Full-stack developer passionate about learning new technologies.",
		Rating:        4.8,
		ReviewCount:   12,
		IsPublic:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
