package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Car struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Make      string         `gorm:"size:100;not null" json:"make"`
	Model     string         `gorm:"size:100;not null" json:"model"`
	Year      int            `gorm:"not null" json:"year"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Mods      []CarMod       `gorm:"foreignKey:CarID" json:"mods"`
}

type CarMod struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Category  string         `gorm:"size:20;not null" json:"category"`
	Notes     *string        `gorm:"type:text" json:"notes"`
	CarID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"carId"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
