package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

// Catalog is the fixed set of redeemable rewards. It is loaded once at
// startup and read-only afterwards.
type Catalog struct {
	items []models.RewardItem
	byID  map[string]models.RewardItem
}

func defaultItems() []models.RewardItem {
	return []models.RewardItem{
		{
			ID:             "reward_1",
			Name:           "10% Off Voucher",
			Description:    "Get 10% off on your next purchase",
			PointsRequired: 200,
			Tier:           1,
			ImageURL:       "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=400&q=80",
		},
		{
			ID:             "reward_2",
			Name:           "Free Triangle Waffle",
			Description:    "A delicious crispy triangle waffle",
			PointsRequired: 400,
			Tier:           2,
			ImageURL:       "https://images.unsplash.com/photo-1600713531223-aab27a01bb69?w=400&q=80",
		},
		{
			ID:             "reward_3",
			Name:           "Popsicle Waffle",
			Description:    "Waffle on a stick - perfect for on-the-go!",
			PointsRequired: 500,
			Tier:           3,
			ImageURL:       "https://images.unsplash.com/photo-1740072625684-46f4f1f594d8?w=400&q=80",
		},
		{
			ID:             "reward_4",
			Name:           "6pc Pancake Stack",
			Description:    "Six fluffy pancakes with your choice of topping",
			PointsRequired: 600,
			Tier:           4,
			ImageURL:       "https://images.unsplash.com/photo-1575831967553-771b0db4f7c1?w=400&q=80",
		},
		{
			ID:             "reward_5",
			Name:           "Premium Choice",
			Description:    "Choice of any Waffle OR 10pc Pancake",
			PointsRequired: 800,
			Tier:           5,
			ImageURL:       "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400&q=80",
		},
	}
}

// New returns the built-in catalog.
func New() *Catalog {
	c, _ := build(defaultItems())
	return c
}

// Load reads a YAML catalog file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rewards file: %w", err)
	}

	var file struct {
		Rewards []models.RewardItem `yaml:"rewards"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rewards file: %w", err)
	}
	if len(file.Rewards) == 0 {
		return nil, fmt.Errorf("rewards file %s contains no rewards", path)
	}

	return build(file.Rewards)
}

func build(items []models.RewardItem) (*Catalog, error) {
	byID := make(map[string]models.RewardItem, len(items))
	for _, item := range items {
		if item.ID == "" || item.Name == "" || item.PointsRequired <= 0 {
			return nil, fmt.Errorf("invalid reward entry %q", item.ID)
		}
		if _, ok := byID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate reward id %q", item.ID)
		}
		byID[item.ID] = item
	}
	return &Catalog{items: items, byID: byID}, nil
}

// Items returns the rewards in catalog order.
func (c *Catalog) Items() []models.RewardItem {
	out := make([]models.RewardItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up a reward by id.
func (c *Catalog) Get(id string) (models.RewardItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}
