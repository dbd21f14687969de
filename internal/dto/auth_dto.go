package dto

import (
	"net/mail"

	"github.com/google/uuid"
	"github.com/tracksideapp/backend/internal/models"
	"github.com/tracksideapp/backend/internal/validation"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *RegisterRequest) Validate() error {
	var v validation.Errors
	if len(r.Name) < 2 {
		v.Add("name", "name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		v.Add("email", "invalid email address")
	}
	if len(r.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if r.Password != r.ConfirmPassword {
		v.Add("confirmPassword", "passwords do not match")
	}
	return v.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var v validation.Errors
	if r.Email == "" {
		v.Add("email", "email is required")
	}
	if r.Password == "" {
		v.Add("password", "password is required")
	}
	return v.Err()
}

type UserBrief struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name"`
}

type RegisterResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Email string    `json:"email"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Email string    `json:"email"`
}

type ProfileUpdateRequest struct {
	Name       *string `json:"name"`
	Experience *string `json:"experience"`
}

func (r *ProfileUpdateRequest) Validate() error {
	var v validation.Errors
	if r.Name != nil && len(*r.Name) < 2 {
		v.Add("name", "name must be at least 2 characters")
	}
	if r.Experience != nil && !models.ValidExperienceLevel(*r.Experience) {
		v.Add("experience", "invalid experience level")
	}
	return v.Err()
}
