package mongodb

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const subscriptionCollectionName = "subscriptions"

type SubscriptionRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewSubscriptionRepository(db *mongo.Database, log *logger.Logger) (*SubscriptionRepository, error) {
	collection := db.Collection(subscriptionCollectionName)
	if err := ensureUniqueIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}, log); err != nil {
		return nil, err
	}
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "subscriber", Value: 1}}},
	}, log)

	return &SubscriptionRepository{
		collection: collection,
		logger:     log.Named("SubscriptionRepository"),
	}, nil
}

func (r *SubscriptionRepository) Find(ctx context.Context, channel, subscriber string) (*domain.Subscription, error) {
	var doc subscriptionDocument
	if err := r.collection.FindOne(ctx, bson.M{"channel": channel, "subscriber": subscriber}).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	sub.CreatedAt = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, &subscriptionDocument{
		Channel:    sub.Channel,
		Subscriber: sub.Subscriber,
		CreatedAt:  sub.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate subscription", zap.String("channel", sub.Channel), zap.String("subscriber", sub.Subscriber))
		}
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	sub.ID = id
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return dbErr(err, "delete")
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) ListByChannel(ctx context.Context, channel string) ([]*domain.Subscription, error) {
	return r.list(ctx, bson.M{"channel": channel})
}

func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriber string) ([]*domain.Subscription, error) {
	return r.list(ctx, bson.M{"subscriber": subscriber})
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channel string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return 0, dbErr(err, "count")
	}
	return n, nil
}

func (r *SubscriptionRepository) list(ctx context.Context, filter bson.M) ([]*domain.Subscription, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*subscriptionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dbErr(err, "cursor all")
	}
	subs := make([]*domain.Subscription, len(docs))
	for i, doc := range docs {
		subs[i] = doc.toDomain()
	}
	return subs, nil
}
