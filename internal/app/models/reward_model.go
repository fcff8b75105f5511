package models

// RewardItem is static catalog configuration, never persisted.
type RewardItem struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description" json:"description"`
	PointsRequired int    `yaml:"points_required" json:"points_required"`
	Tier           int    `yaml:"tier" json:"tier"`
	ImageURL       string `yaml:"image_url" json:"image_url"`
}
