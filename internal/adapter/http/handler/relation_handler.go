package handler

import (
	"context"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
)

type LikeHandler struct {
	responder
	likes LikeService
}

func NewLikeHandler(likes LikeService, log *logger.Logger, m *metrics.MetricsManager) *LikeHandler {
	return &LikeHandler{
		responder: responder{logger: log.Named("LikeHTTPHandler"), metrics: m},
		likes:     likes,
	}
}

type likeToggleFunc func(ctx context.Context, actorID, targetID string) (*domain.LikeToggle, error)

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, kind domain.LikeKind, param string, fn likeToggleFunc) {
	result, err := fn(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, param))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to toggle "+string(kind)+" like")
		return
	}
	h.metrics.RelationToggled(string(kind), string(result.Action))
	message := "Like added successfully"
	if result.Action == domain.ToggleDeactivated {
		message = "Like removed successfully"
	}
	respondOK(w, http.StatusOK, result, message)
}

func (h *LikeHandler) HandleToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, domain.LikeKindVideo, "videoId", h.likes.ToggleVideoLike)
}

func (h *LikeHandler) HandleToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, domain.LikeKindComment, "commentId", h.likes.ToggleCommentLike)
}

func (h *LikeHandler) HandleToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, domain.LikeKindTweet, "tweetId", h.likes.ToggleTweetLike)
}

// HandleListLikedVideos lists the caller's video likes.
func (h *LikeHandler) HandleListLikedVideos(w http.ResponseWriter, r *http.Request) {
	likes, err := h.likes.ListLiked(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list liked videos")
		return
	}
	videoLikes := make([]*domain.Like, 0, len(likes))
	for _, l := range likes {
		if l.Target.Kind == domain.LikeKindVideo {
			videoLikes = append(videoLikes, l)
		}
	}
	respondOK(w, http.StatusOK, videoLikes, "Liked videos fetched successfully")
}

type SubscriptionHandler struct {
	responder
	subscriptions SubscriptionService
}

func NewSubscriptionHandler(subscriptions SubscriptionService, log *logger.Logger, m *metrics.MetricsManager) *SubscriptionHandler {
	return &SubscriptionHandler{
		responder:     responder{logger: log.Named("SubscriptionHTTPHandler"), metrics: m},
		subscriptions: subscriptions,
	}
}

func (h *SubscriptionHandler) HandleToggleSubscription(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscriptions.ToggleSubscription(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "channelId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to toggle subscription")
		return
	}
	h.metrics.RelationToggled("subscription", string(result.Action))
	message := "Subscribed successfully"
	if result.Action == domain.ToggleDeactivated {
		message = "Unsubscribed successfully"
	}
	respondOK(w, http.StatusOK, result, message)
}

func (h *SubscriptionHandler) HandleListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptions.ListSubscribers(r.Context(), chi.URLParam(r, "channelId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list subscribers")
		return
	}
	respondOK(w, http.StatusOK, subs, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) HandleListSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subscriptions.ListSubscribedChannels(r.Context(), chi.URLParam(r, "subscriberId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list subscribed channels")
		return
	}
	respondOK(w, http.StatusOK, subs, "Subscribed channels fetched successfully")
}
