package handler

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
)

type PlaylistHandler struct {
	responder
	playlists PlaylistService
}

func NewPlaylistHandler(playlists PlaylistService, log *logger.Logger, m *metrics.MetricsManager) *PlaylistHandler {
	return &PlaylistHandler{
		responder: responder{logger: log.Named("PlaylistHTTPHandler"), metrics: m},
		playlists: playlists,
	}
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type playlistVideoRequest struct {
	VideoID string `json:"videoId"`
}

func (h *PlaylistHandler) HandleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	playlist, err := h.playlists.CreatePlaylist(r.Context(), middleware.UserIDFromContext(r.Context()), req.Name, req.Description)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to create playlist")
		return
	}
	respondOK(w, http.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) HandleListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.playlists.ListUserPlaylists(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list playlists")
		return
	}
	respondOK(w, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) HandleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.playlists.GetPlaylist(r.Context(), chi.URLParam(r, "playlistId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to get playlist")
		return
	}
	respondOK(w, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) HandleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req updatePlaylistRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	update := domain.PlaylistUpdate{Name: req.Name, Description: req.Description}
	playlist, err := h.playlists.UpdatePlaylist(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "playlistId"), update)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to update playlist")
		return
	}
	respondOK(w, http.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) HandleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.playlists.DeletePlaylist(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "playlistId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to delete playlist")
		return
	}
	respondOK(w, http.StatusOK, playlist, "Playlist deleted successfully")
}

func (h *PlaylistHandler) HandleAddVideo(w http.ResponseWriter, r *http.Request) {
	var req playlistVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, r, "Invalid request body: "+err.Error())
		return
	}
	playlist, err := h.playlists.AddVideo(r.Context(), middleware.UserIDFromContext(r.Context()), chi.URLParam(r, "playlistId"), req.VideoID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to add video to playlist")
		return
	}
	respondOK(w, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (h *PlaylistHandler) HandleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.playlists.RemoveVideo(r.Context(), middleware.UserIDFromContext(r.Context()),
		chi.URLParam(r, "playlistId"), chi.URLParam(r, "videoId"))
	if err != nil {
		h.respondWithError(w, r, err, "Failed to remove video from playlist")
		return
	}
	respondOK(w, http.StatusOK, playlist, "Video removed from playlist successfully")
}
