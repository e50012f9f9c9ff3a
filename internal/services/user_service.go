package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mblog-app/backend/internal/apperr"
	"github.com/mblog-app/backend/internal/models"
	"github.com/mblog-app/backend/internal/repositories"
)

const tokenTTL = time.Hour

// UserService handles registration, login, and account management.
type UserService struct {
	users     repositories.UserRepository
	jwtSecret string
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret}
}

// Register creates a user after checking username and email uniqueness.
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (*models.UserSummary, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.UserName) == "" ||
		strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperr.New(apperr.InvalidInput, "name, userName, email and password are required")
	}

	if _, err := s.users.GetByIdentifier(ctx, req.UserName); err == nil {
		return nil, apperr.New(apperr.Conflict, "username already in use")
	} else if !isNotFound(err) {
		return nil, apperr.Wrap(err, "failed to check username")
	}
	if _, err := s.users.GetByIdentifier(ctx, req.Email); err == nil {
		return nil, apperr.New(apperr.Conflict, "email already in use")
	} else if !isNotFound(err) {
		return nil, apperr.Wrap(err, "failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to hash password")
	}

	user := &models.User{
		Name:     req.Name,
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
		ImageURL: req.ImageURL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperr.New(apperr.Conflict, "username or email already in use")
		}
		return nil, apperr.Wrap(err, "failed to create user")
	}

	summary := user.Summary()
	return &summary, nil
}

// Login verifies the credentials and issues a signed bearer token carrying
// the user's id.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*models.UserSummary, string, error) {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(password) == "" {
		return nil, "", apperr.New(apperr.InvalidInput, "identifier and password are required")
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperr.New(apperr.NotFound, "user not found")
		}
		return nil, "", apperr.Wrap(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	summary := user.Summary()
	return &summary, token, nil
}

// GetByID returns a user summary.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserSummary, error) {
	if id == uuid.Nil {
		return nil, apperr.New(apperr.InvalidInput, "user id is required")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, apperr.Wrap(err, "failed to load user")
	}
	summary := user.Summary()
	return &summary, nil
}

// List returns all users as summaries, ordered by name.
func (s *UserService) List(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list users")
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}
	return summaries, nil
}

// Delete removes a user; the store cascades to owned tweets, likes and
// follow edges.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.New(apperr.InvalidInput, "user id is required")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return apperr.New(apperr.NotFound, "user not found")
		}
		return apperr.Wrap(err, "failed to delete user")
	}
	return nil
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	if s.jwtSecret == "" {
		return "", apperr.New(apperr.Internal, "signing secret is not configured")
	}

	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", apperr.Wrap(err, "failed to sign token")
	}
	return signed, nil
}
