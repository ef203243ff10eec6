package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID     string          `json:"user_id"`
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expires_at"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Phone      *string         `json:"phone,omitempty"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Phone:      user.Phone,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		UserID:     user.ID.String(),
		Token:      token,
		ExpiresAt:  expiresAt,
		Email:      user.Email,
		Username:   user.Username,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
	}
}
