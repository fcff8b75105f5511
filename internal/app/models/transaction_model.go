package models

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeEarned TransactionType = "earned"
	TransactionTypeSpent  TransactionType = "spent"
)

// PointTransaction is an append-only audit record of a point movement.
// UserName is a snapshot taken at write time, not a live reference.
type PointTransaction struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" bson:"id" json:"id"`
	UserID          string          `gorm:"type:varchar(36);not null;index" bson:"user_id" json:"user_id"`
	UserName        string          `gorm:"type:varchar(255);not null" bson:"user_name" json:"user_name"`
	Points          int             `gorm:"not null" bson:"points" json:"points"`
	Reason          string          `gorm:"type:varchar(255);not null" bson:"reason" json:"reason"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null;index" bson:"transaction_type" json:"transaction_type"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" bson:"created_at" json:"created_at"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}
