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

const likeCollectionName = "likes"

// LikeRepository implements domain.LikeRepository using MongoDB.
type LikeRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewLikeRepository creates a like repository. One partial unique index per
// target kind keeps a single like per (target, user); the repository is not
// usable without them.
func NewLikeRepository(db *mongo.Database, log *logger.Logger) (*LikeRepository, error) {
	collection := db.Collection(likeCollectionName)

	var unique []mongo.IndexModel
	for _, kind := range []domain.LikeKind{domain.LikeKindVideo, domain.LikeKindComment, domain.LikeKindTweet} {
		field := likeTargetField(kind)
		unique = append(unique, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}, {Key: "liked_by", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{field: bson.M{"$exists": true}}),
		})
	}
	if err := ensureUniqueIndexes(collection, unique, log); err != nil {
		return nil, err
	}
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: "created_at", Value: -1}}},
	}, log)

	return &LikeRepository{
		collection: collection,
		logger:     log.Named("LikeRepository"),
	}, nil
}

func targetFilter(target domain.LikeTarget) bson.M {
	return bson.M{likeTargetField(target.Kind): target.ID}
}

func (r *LikeRepository) Find(ctx context.Context, target domain.LikeTarget, likedBy string) (*domain.Like, error) {
	filter := targetFilter(target)
	filter["liked_by"] = likedBy

	var doc likeDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

// Create inserts the like. A duplicate (target, user) pair yields domain.ErrAlreadyExists.
func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	like.CreatedAt = time.Now().UTC()

	res, err := r.collection.InsertOne(ctx, toLikeDocument(like))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate like", zap.String("kind", string(like.Target.Kind)), zap.String("target_id", like.Target.ID), zap.String("user_id", like.LikedBy))
		}
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	like.ID = id
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
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

func (r *LikeRepository) ListByUser(ctx context.Context, likedBy string) ([]*domain.Like, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"liked_by": likedBy}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*likeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dbErr(err, "cursor all")
	}
	likes := make([]*domain.Like, len(docs))
	for i, doc := range docs {
		likes[i] = doc.toDomain()
	}
	return likes, nil
}

// CountByVideoIDs counts likes on any of the given videos.
func (r *LikeRepository) CountByVideoIDs(ctx context.Context, videoIDs []string) (int64, error) {
	if len(videoIDs) == 0 {
		return 0, nil
	}
	n, err := r.collection.CountDocuments(ctx, bson.M{"video_id": bson.M{"$in": videoIDs}})
	if err != nil {
		return 0, dbErr(err, "count")
	}
	return n, nil
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, target domain.LikeTarget) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, targetFilter(target))
	if err != nil {
		r.logger.Error("Failed to delete likes by target", zap.String("kind", string(target.Kind)), zap.String("target_id", target.ID), zap.Error(err))
		return 0, dbErr(err, "delete many")
	}
	return res.DeletedCount, nil
}
