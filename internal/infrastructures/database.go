package infrastructures

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

func NewDatabase() *gorm.DB {
	db, err := gorm.Open(postgres.Open(Config.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.PointTransaction{},
		&models.Redemption{},
	); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
