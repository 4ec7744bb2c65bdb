package request

import (
	"distrito_racing/internal/domain/entities"
)

// ProfileRequest creates or updates the caller's profile. Role and active
// state are never part of this payload; those stay server-controlled.
type ProfileRequest struct {
	Name                  string `json:"name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Username              string `json:"username"`
	CPF                   string `json:"cpf"`
	Phone                 string `json:"phone"`
	Birthdate             string `json:"birthdate"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	CategoryMembership    string `json:"category_membership"`
	HasMembership         string `json:"has_membership"`
}

func (r ProfileRequest) ToEntity() entities.Profile {
	return entities.Profile{
		Name:                  r.Name,
		Email:                 r.Email,
		Username:              r.Username,
		CPF:                   r.CPF,
		Phone:                 r.Phone,
		Birthdate:             r.Birthdate,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		CategoryMembership:    r.CategoryMembership,
		HasMembership:         r.HasMembership,
	}
}

// SetActiveRequest toggles a profile's active flag (admin only).
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
