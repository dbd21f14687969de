package dto

import (
	"github.com/tracksideapp/backend/internal/models"
	"github.com/tracksideapp/backend/internal/validation"
)

type CarRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

func (r *CarRequest) Validate() error {
	var v validation.Errors
	if r.Make == "" {
		v.Add("make", "make is required")
	}
	if r.Model == "" {
		v.Add("model", "model is required")
	}
	if r.Year < 1900 || r.Year > 2030 {
		v.Add("year", "year must be between 1900 and 2030")
	}
	return v.Err()
}

type CarModRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Notes    *string `json:"notes"`
}

func (r *CarModRequest) Validate() error {
	var v validation.Errors
	if r.Name == "" {
		v.Add("name", "mod name is required")
	}
	if !models.ValidModCategory(r.Category) {
		v.Add("category", "invalid mod category")
	}
	return v.Err()
}

type CarBrief struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}
