package infrastructures

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func NewMongoDatabase() *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(Config.MongoURL))
	if err != nil {
		logrus.Fatalf("failed to connect mongodb: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.Fatalf("failed to ping mongodb: %v", err)
	}

	return client.Database(Config.MongoDBName)
}
