package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travelogue/models"
	"travelogue/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError signals malformed account input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

const minPasswordLength = 6

// Register creates a new account, hashing the credential before it is stored.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.FirstName == "" || req.LastName == "" {
		return nil, ValidationError{Message: "email, firstName and lastName are required"}
	}
	if len(req.Password) < minPasswordLength {
		return nil, ValidationError{Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Favorites:    []string{},
		Role:         models.RoleUser,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{User: userObj.PublicProfile(), Token: token}, nil
}

// Authenticate verifies credentials and issues a fresh token. Lookup and
// password failures collapse into one generic error.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(strings.ToLower(email))
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	userRec.LastLogin = &now
	if err := s.Repo.Update(userRec); err != nil {
		logger.Warn("Authenticate: failed to update last login", zap.Error(err))
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{User: userRec.PublicProfile(), Token: token}, nil
}

// GetUserByID retrieves a user record by its unique ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, ErrUserNotFound
	}
	return userRec, nil
}

// UpdateProfile applies partial profile updates; empty fields are kept.
func (s *DefaultUserService) UpdateProfile(userID string, req UpdateProfileRequest) (*models.PublicProfile, error) {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		userRec.FirstName = req.FirstName
	}
	if req.LastName != "" {
		userRec.LastName = req.LastName
	}
	if req.Phone != "" {
		userRec.Phone = req.Phone
	}

	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile := userRec.PublicProfile()
	return &profile, nil
}

// ToggleFavorite adds or removes a trip from the user's favorites and returns
// the updated list.
func (s *DefaultUserService) ToggleFavorite(userID, tripID string) ([]string, error) {
	userRec, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	found := false
	favorites := make([]string, 0, len(userRec.Favorites))
	for _, id := range userRec.Favorites {
		if id == tripID {
			found = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !found {
		favorites = append(favorites, tripID)
	}
	userRec.Favorites = favorites

	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	return favorites, nil
}
