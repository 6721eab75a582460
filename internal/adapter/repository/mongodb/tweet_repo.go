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

const tweetCollectionName = "tweets"

type TweetRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewTweetRepository(db *mongo.Database, log *logger.Logger) *TweetRepository {
	collection := db.Collection(tweetCollectionName)
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
	}, log)

	return &TweetRepository{
		collection: collection,
		logger:     log.Named("TweetRepository"),
	}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, &tweetDocument{
		Content:   tweet.Content,
		Owner:     tweet.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		r.logger.Error("Failed to insert tweet", zap.String("owner", tweet.Owner), zap.Error(err))
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	tweet.ID = id
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*domain.Tweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc tweetDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}

	var doc tweetDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, afterUpdate()).Decode(&doc); err != nil {
		return nil, dbErr(err, "update")
	}
	return doc.toDomain(), nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
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

func (r *TweetRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Tweet, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*tweetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dbErr(err, "cursor all")
	}
	tweets := make([]*domain.Tweet, len(docs))
	for i, doc := range docs {
		tweets[i] = doc.toDomain()
	}
	return tweets, nil
}
