package entities

import "time"

// Role is the capability level of a profile.

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the application-side record of an authenticated user.
//
// Storage model (DynamoDB):
//   - PK: user_id (the identity provider uid)
//   - GSI1 (email-index): email

type Profile struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  Role      `json:"role"`
	IsActive              bool      `json:"is_active"`
	Username              string    `json:"username,omitempty"`
	CPF                   string    `json:"cpf,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Birthdate             string    `json:"birthdate,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CategoryMembership    string    `json:"category_membership,omitempty"`
	HasMembership         string    `json:"has_membership,omitempty"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (p Profile) IsAdmin() bool { return p.Role == RoleAdmin }
