package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	FirstName     string   `db:"first_name"`
	LastName      string   `db:"last_name"`
	Phone         *string  `db:"phone"`
	Role          UserRole `db:"role"`
	EmailVerified bool     `db:"email_verified"`
	IsActive      bool     `db:"is_active"`
}
