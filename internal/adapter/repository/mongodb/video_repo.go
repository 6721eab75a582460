package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const videoCollectionName = "videos"

// VideoRepository implements domain.VideoRepository using MongoDB.
type VideoRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewVideoRepository creates a video repository and ensures its indexes.
func NewVideoRepository(db *mongo.Database, log *logger.Logger) *VideoRepository {
	collection := db.Collection(videoCollectionName)
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}}},
	}, log)

	return &VideoRepository{
		collection: collection,
		logger:     log.Named("VideoRepository"),
	}
}

// Create inserts the video and writes the generated id and timestamps back into it.
func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, toVideoDocument(video))
	if err != nil {
		r.logger.Error("Failed to insert video into DB", zap.String("owner", video.Owner), zap.Error(err))
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	video.ID = id
	r.logger.Info("Video created in DB", zap.String("video_id", id))
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc videoDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

// Update sets the provided fields and returns the document after the change.
func (r *VideoRepository) Update(ctx context.Context, id string, update domain.VideoUpdate) (*domain.Video, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = toMediaDocument(*update.Thumbnail)
	}
	if update.IsPublished != nil {
		set["is_published"] = *update.IsPublished
	}

	var doc videoDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, afterUpdate()).Decode(&doc)
	if err != nil {
		r.logger.Error("Failed to update video in DB", zap.String("video_id", id), zap.Error(err))
		return nil, dbErr(err, "update")
	}
	return doc.toDomain(), nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Failed to delete video from DB", zap.String("video_id", id), zap.Error(err))
		return dbErr(err, "delete")
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOwner returns a page of the owner's videos, newest first, and the owner's total.
func (r *VideoRepository) ListByOwner(ctx context.Context, owner string, page domain.Page) ([]*domain.Video, int64, error) {
	filter := bson.M{"owner": owner}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*videoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, dbErr(err, "cursor all")
	}
	videos := make([]*domain.Video, len(docs))
	for i, doc := range docs {
		videos[i] = doc.toDomain()
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, dbErr(err, "count")
	}
	return videos, total, nil
}

func (r *VideoRepository) CountByOwner(ctx context.Context, owner string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"owner": owner})
	if err != nil {
		return 0, dbErr(err, "count")
	}
	return n, nil
}

// SumViewsByOwner adds up the view counters of every video the owner has.
func (r *VideoRepository) SumViewsByOwner(ctx context.Context, owner string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$owner"},
			{Key: "total_views", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error("Failed to aggregate views", zap.String("owner", owner), zap.Error(err))
		return 0, dbErr(err, "aggregate")
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalViews int64 `bson:"total_views"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("db cursor all for aggregate failed: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}

func (r *VideoRepository) ListIDsByOwner(ctx context.Context, owner string) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []videoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dbErr(err, "cursor all")
	}
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID.Hex()
	}
	return ids, nil
}
