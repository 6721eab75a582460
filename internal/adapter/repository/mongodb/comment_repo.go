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

const commentCollectionName = "comments"

type CommentRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewCommentRepository(db *mongo.Database, log *logger.Logger) *CommentRepository {
	collection := db.Collection(commentCollectionName)
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "video_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}, log)

	return &CommentRepository{
		collection: collection,
		logger:     log.Named("CommentRepository"),
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, &commentDocument{
		Content:   comment.Content,
		VideoID:   comment.VideoID,
		Owner:     comment.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		r.logger.Error("Failed to insert comment", zap.String("video_id", comment.VideoID), zap.Error(err))
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	comment.ID = id
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc commentDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}

	var doc commentDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, afterUpdate()).Decode(&doc); err != nil {
		return nil, dbErr(err, "update")
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
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

// ListByVideo returns a page of a video's comments, newest first.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, page domain.Page) ([]*domain.Comment, int64, error) {
	filter := bson.M{"video_id": videoID}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, dbErr(err, "cursor all")
	}
	comments := make([]*domain.Comment, len(docs))
	for i, doc := range docs {
		comments[i] = doc.toDomain()
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, dbErr(err, "count")
	}
	return comments, total, nil
}

func (r *CommentRepository) DeleteByVideoID(ctx context.Context, videoID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"video_id": videoID})
	if err != nil {
		r.logger.Error("Failed to delete comments by video", zap.String("video_id", videoID), zap.Error(err))
		return 0, dbErr(err, "delete many")
	}
	return res.DeletedCount, nil
}
