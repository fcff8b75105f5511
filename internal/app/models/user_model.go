package models

import (
	"time"
)

type User struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" bson:"id" json:"id"`
	Name           string    `gorm:"type:varchar(255);uniqueIndex;not null" bson:"name" json:"name"`
	CurrentPoints  int       `gorm:"not null;default:0" bson:"current_points" json:"current_points"`
	LifetimePoints int       `gorm:"not null;default:0" bson:"lifetime_points" json:"lifetime_points"`
	CreatedAt      time.Time `gorm:"autoCreateTime" bson:"created_at" json:"created_at"`
}

type UserCreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UserLoginRequest struct {
	Name string `json:"name" validate:"required"`
}
