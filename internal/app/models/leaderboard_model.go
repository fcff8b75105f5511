package models

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	LifetimePoints int    `json:"lifetime_points"`
	UserID         string `json:"user_id"`
}
