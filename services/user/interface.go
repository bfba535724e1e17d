package user

import (
	userRepo "travelogue/database/repository/user"
	"travelogue/models"
)

// UserService defines account registration, authentication and profile flows.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(userID string, req UpdateProfileRequest) (*models.PublicProfile, error)
	ToggleFavorite(userID, tripID string) ([]string, error)
}

// RegisterRequest is the inbound payload for a new account.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UpdateProfileRequest carries optional profile updates; empty fields keep
// their current values.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Phone     string
}

// AuthResponse bundles the public profile with a fresh auth token.
type AuthResponse struct {
	User  models.PublicProfile `json:"user"`
	Token string               `json:"token"`
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
