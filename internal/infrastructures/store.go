package infrastructures

import (
	"github.com/sirupsen/logrus"

	"github.com/wafflepopco/loyalty-core/internal/app/stores"
)

// NewStore selects the storage backend from STORAGE_DRIVER.
func NewStore() stores.Store {
	switch Config.StorageDriver {
	case "mongo":
		return stores.NewMongoStore(NewMongoDatabase())
	case "postgres":
		return stores.NewGormStore(NewDatabase())
	default:
		logrus.Fatalf("unknown storage driver: %s", Config.StorageDriver)
		return nil
	}
}
