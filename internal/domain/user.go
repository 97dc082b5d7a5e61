package domain

import "time"

// Role categorizes dashboard accounts. It is a stored attribute surfaced
// to clients; this service does not gate operations on it.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
)

// User is the domain model for dashboard accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Location     string
	Position     string
	Bio          string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
