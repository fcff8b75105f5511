package infrastructures

import (
	"github.com/wafflepopco/loyalty-core/internal/app/catalog"
)

// NewRewardCatalog loads the reward catalog, from REWARDS_FILE when set and
// the built-in five-item catalog otherwise.
func NewRewardCatalog() (*catalog.Catalog, error) {
	return catalog.Load(Config.RewardsFile)
}
