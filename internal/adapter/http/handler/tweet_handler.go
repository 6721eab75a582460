package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
)

type TweetHandler struct {
	responder
	tweets TweetService
}

func NewTweetHandler(tweets TweetService, log *logger.Logger, m *metrics.MetricsManager) *TweetHandler {
	return &TweetHandler{
		responder: responder{logger: log.Named("TweetHTTPHandler"), metrics: m},
		tweets:    tweets,
	}
}

func (h *TweetHandler) HandleCreateTweet(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	tweet, err := h.tweets.CreateTweet(r.Context(), middleware.UserIDFromContext(r.Context()), req.Content)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to create tweet")
		return
	}
	respondOK(w, http.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) HandleListUserTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.tweets.ListUserTweets(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list tweets")
		return
	}
	respondOK(w, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (h *TweetHandler) HandleUpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetID := chi.URLParam(r, "tweetId")
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	tweet, err := h.tweets.UpdateTweet(r.Context(), middleware.UserIDFromContext(r.Context()), tweetID, req.Content)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to update tweet")
		return
	}
	respondOK(w, http.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) HandleDeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID := chi.URLParam(r, "tweetId")
	tweet, err := h.tweets.DeleteTweet(r.Context(), middleware.UserIDFromContext(r.Context()), tweetID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to delete tweet")
		return
	}
	respondOK(w, http.StatusOK, tweet, "Tweet deleted successfully")
}
