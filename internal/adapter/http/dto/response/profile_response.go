package response

import (
	"time"

	"distrito_racing/internal/domain/entities"
)

type ProfileResponse struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
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

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                    p.ID,
		UserID:                p.UserID,
		Name:                  p.Name,
		Email:                 p.Email,
		Role:                  string(p.Role),
		IsActive:              p.IsActive,
		Username:              p.Username,
		CPF:                   p.CPF,
		Phone:                 p.Phone,
		Birthdate:             p.Birthdate,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		CategoryMembership:    p.CategoryMembership,
		HasMembership:         p.HasMembership,
		UpdatedAt:             p.UpdatedAt,
	}
}

func FromProfiles(profiles []entities.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromProfile(p))
	}
	return out
}
