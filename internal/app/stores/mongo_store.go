package stores

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

// MongoStore is the document backend. Writes that span a user row and a log
// record are issued as independent operations without a multi-document
// transaction, matching the original document-store behavior.
type MongoStore struct {
	users        *mongo.Collection
	transactions *mongo.Collection
	redemptions  *mongo.Collection
}

var nameCollation = &options.Collation{Locale: "en", Strength: 2}

func NewMongoStore(db *mongo.Database) *MongoStore {
	s := &MongoStore{
		users:        db.Collection("users"),
		transactions: db.Collection("transactions"),
		redemptions:  db.Collection("redemptions"),
	}
	s.ensureIndexes()
	return s
}

func (s *MongoStore) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetCollation(nameCollation),
	})
	if err != nil {
		logrus.Warnf("failed to create users name index: %v", err)
	}

	_, err = s.redemptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reward_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.Warnf("failed to create redemptions reward_code index: %v", err)
	}
}

func nameFilter(name string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	count, err := s.users.CountDocuments(ctx, nameFilter(user.Name))
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	_, err = s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, nameFilter(name)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetCollation(nameCollation)

	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) AddPoints(ctx context.Context, userID string, points int, trx *models.PointTransaction) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$inc": bson.M{
		"current_points":  points,
		"lifetime_points": points,
	}}

	var user models.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"id": userID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.transactions.InsertOne(ctx, trx); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) ListTransactions(ctx context.Context, limit int) ([]models.PointTransaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.transactions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var transactions []models.PointTransaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *MongoStore) Redeem(ctx context.Context, userID string, cost int, redemption *models.Redemption, trx *models.PointTransaction) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$inc": bson.M{"current_points": -cost}}

	var user models.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"id": userID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.redemptions.InsertOne(ctx, redemption); err != nil {
		return nil, err
	}
	if _, err := s.transactions.InsertOne(ctx, trx); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoStore) ListRedemptions(ctx context.Context, limit int) ([]models.Redemption, error) {
	return s.findRedemptions(ctx, bson.M{}, limit)
}

func (s *MongoStore) ListUserRedemptions(ctx context.Context, userID string, limit int) ([]models.Redemption, error) {
	return s.findRedemptions(ctx, bson.M{"user_id": userID}, limit)
}

func (s *MongoStore) findRedemptions(ctx context.Context, filter bson.M, limit int) ([]models.Redemption, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.redemptions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var redemptions []models.Redemption
	if err := cursor.All(ctx, &redemptions); err != nil {
		return nil, err
	}
	return redemptions, nil
}

func (s *MongoStore) MarkClaimed(ctx context.Context, redemptionID string, at time.Time) (*models.Redemption, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"claimed":    true,
		"claimed_at": at,
	}}

	var redemption models.Redemption
	err := s.redemptions.FindOneAndUpdate(ctx, bson.M{"id": redemptionID}, update, opts).Decode(&redemption)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &redemption, nil
}

func (s *MongoStore) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lifetime_points", Value: -1}, {Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
