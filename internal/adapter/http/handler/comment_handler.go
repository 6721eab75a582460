package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
)

type CommentHandler struct {
	responder
	comments CommentService
}

func NewCommentHandler(comments CommentService, log *logger.Logger, m *metrics.MetricsManager) *CommentHandler {
	return &CommentHandler{
		responder: responder{logger: log.Named("CommentHTTPHandler"), metrics: m},
		comments:  comments,
	}
}

// contentRequest is the body of comment and tweet writes.
type contentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	page := pageFromQuery(r)
	comments, total, err := h.comments.ListVideoComments(r.Context(), videoID, page)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list comments")
		return
	}
	respondOK(w, http.StatusOK, PagedResult{Items: comments, Total: total, Page: page.Page, Limit: page.Limit}, "Comments fetched successfully")
}

func (h *CommentHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	comment, err := h.comments.AddComment(r.Context(), middleware.UserIDFromContext(r.Context()), videoID, req.Content)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to add comment")
		return
	}
	respondOK(w, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentId")
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	comment, err := h.comments.UpdateComment(r.Context(), middleware.UserIDFromContext(r.Context()), commentID, req.Content)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to update comment")
		return
	}
	respondOK(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentId")
	comment, err := h.comments.DeleteComment(r.Context(), middleware.UserIDFromContext(r.Context()), commentID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to delete comment")
		return
	}
	respondOK(w, http.StatusOK, comment, "Comment deleted successfully")
}
