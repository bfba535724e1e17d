package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account holder.
type User struct {
	ID            string     `bson:"id" json:"id"`
	Email         string     `bson:"email" json:"email"` // Unique, stored lowercase.
	PasswordHash  string     `bson:"password_hash" json:"-"`
	FirstName     string     `bson:"first_name" json:"firstName"`
	LastName      string     `bson:"last_name" json:"lastName"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar        string     `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Favorites     []string   `bson:"favorites" json:"favorites"` // Trip IDs.
	Role          string     `bson:"role" json:"role"`
	EmailVerified bool       `bson:"email_verified" json:"emailVerified"`
	LastLogin     *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updatedAt"`
}

// PublicProfile is the externally visible projection of a user record.
// The credential hash never leaves the service layer.
type PublicProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	Favorites []string  `json:"favorites"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicProfile returns the safe projection of the user.
func (u *User) PublicProfile() PublicProfile {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return PublicProfile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Favorites: favorites,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
