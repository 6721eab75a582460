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

const playlistCollectionName = "playlists"

type PlaylistRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewPlaylistRepository(db *mongo.Database, log *logger.Logger) *PlaylistRepository {
	collection := db.Collection(playlistCollectionName)
	ensureIndexes(collection, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
	}, log)

	return &PlaylistRepository{
		collection: collection,
		logger:     log.Named("PlaylistRepository"),
	}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []string{}
	}

	res, err := r.collection.InsertOne(ctx, &playlistDocument{
		Name:        playlist.Name,
		Description: playlist.Description,
		Videos:      playlist.Videos,
		Owner:       playlist.Owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		r.logger.Error("Failed to insert playlist", zap.String("owner", playlist.Owner), zap.Error(err))
		return dbErr(err, "insert")
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	playlist.ID = id
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc playlistDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, dbErr(err, "findone")
	}
	return doc.toDomain(), nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id string, update domain.PlaylistUpdate) (*domain.Playlist, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	return r.findAndModify(ctx, id, bson.M{"$set": set})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
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

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner string) ([]*domain.Playlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, dbErr(err, "find")
	}
	defer cursor.Close(ctx)

	var docs []*playlistDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, dbErr(err, "cursor all")
	}
	playlists := make([]*domain.Playlist, len(docs))
	for i, doc := range docs {
		playlists[i] = doc.toDomain()
	}
	return playlists, nil
}

// AddVideo appends the video id; adding the same video twice keeps both entries.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID string) (*domain.Playlist, error) {
	return r.findAndModify(ctx, id, bson.M{
		"$push": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// RemoveVideo pulls every occurrence of the video id.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID string) (*domain.Playlist, error) {
	return r.findAndModify(ctx, id, bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *PlaylistRepository) findAndModify(ctx context.Context, id string, update bson.M) (*domain.Playlist, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc playlistDocument
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, afterUpdate()).Decode(&doc); err != nil {
		r.logger.Error("Failed to update playlist", zap.String("playlist_id", id), zap.Error(err))
		return nil, dbErr(err, "update")
	}
	return doc.toDomain(), nil
}
