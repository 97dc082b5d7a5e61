package dto

import "github.com/Ankush321-collab/data-dashboard/internal/domain"

// UserResponse is the sanitized account view returned to clients. The
// password hash has no representation here.
type UserResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
	Location string      `json:"location,omitempty"`
	Position string      `json:"position,omitempty"`
	Bio      string      `json:"bio,omitempty"`
	Avatar   string      `json:"avatar,omitempty"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Phone:    user.Phone,
		Location: user.Location,
		Position: user.Position,
		Bio:      user.Bio,
		Avatar:   user.Avatar,
	}
}

// UpdateProfileRequest carries the mutable profile fields. Email and
// password are intentionally not part of this payload; unknown JSON keys
// (including "email" and "password") are dropped at decode time.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Position *string `json:"position"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}
