package models

import (
	"time"
)

type Redemption struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" bson:"id" json:"id"`
	UserID      string     `gorm:"type:varchar(36);not null;index" bson:"user_id" json:"user_id"`
	UserName    string     `gorm:"type:varchar(255);not null" bson:"user_name" json:"user_name"`
	RewardID    string     `gorm:"type:varchar(50);not null" bson:"reward_id" json:"reward_id"`
	RewardName  string     `gorm:"type:varchar(255);not null" bson:"reward_name" json:"reward_name"`
	PointsSpent int        `gorm:"not null" bson:"points_spent" json:"points_spent"`
	RewardCode  string     `gorm:"type:varchar(50);uniqueIndex;not null" bson:"reward_code" json:"reward_code"`
	Claimed     bool       `gorm:"not null;default:false;index" bson:"claimed" json:"claimed"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" bson:"created_at" json:"created_at"`
	ClaimedAt   *time.Time `bson:"claimed_at,omitempty" json:"claimed_at"`
}

type RedeemRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	RewardID string `json:"reward_id" validate:"required"`
}

type MarkClaimedRequest struct {
	RedemptionID string `json:"redemption_id" validate:"required"`
}

type RedeemResponse struct {
	Success         bool   `json:"success"`
	RewardCode      string `json:"reward_code"`
	RewardName      string `json:"reward_name"`
	PointsSpent     int    `json:"points_spent"`
	RemainingPoints int    `json:"remaining_points"`
}
