package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipartMemory is how much of a multipart body is kept in memory; larger
// parts spill to temporary files.
const multipartMemory = 32 << 20

// VideoHandler handles HTTP requests for videos.
type VideoHandler struct {
	responder
	videos         VideoService
	maxUploadBytes int64
}

func NewVideoHandler(videos VideoService, maxUploadBytes int64, log *logger.Logger, m *metrics.MetricsManager) *VideoHandler {
	return &VideoHandler{
		responder:      responder{logger: log.Named("VideoHTTPHandler"), metrics: m},
		videos:         videos,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *VideoHandler) HandleListVideos(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)
	videos, total, err := h.videos.ListOwnVideos(r.Context(), middleware.UserIDFromContext(r.Context()), page)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to list videos")
		return
	}
	respondOK(w, http.StatusOK, PagedResult{Items: videos, Total: total, Page: page.Page, Limit: page.Limit}, "Videos fetched successfully")
}

func (h *VideoHandler) HandlePublishVideo(w http.ResponseWriter, r *http.Request) {
	form, cleanup, err := h.parseMultipart(w, r)
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	defer cleanup()

	videoFile, err := openFormFile(form, "videoFile")
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	if videoFile != nil {
		defer videoFile.close()
	}
	thumbnail, err := openFormFile(form, "thumbnail")
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}
	if thumbnail != nil {
		defer thumbnail.close()
	}

	in := usecase.PublishVideoInput{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		VideoFile:   videoFile.media(),
		Thumbnail:   thumbnail.media(),
	}
	video, err := h.videos.PublishVideo(r.Context(), middleware.UserIDFromContext(r.Context()), in)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to publish video")
		return
	}
	h.metrics.VideoPublished()
	respondOK(w, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	video, err := h.videos.GetVideo(r.Context(), middleware.UserIDFromContext(r.Context()), videoID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to get video")
		return
	}
	respondOK(w, http.StatusOK, video, "Video fetched successfully")
}

// updateVideoRequest is the JSON form of an update without a new thumbnail.
type updateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *VideoHandler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	var in usecase.UpdateVideoInput

	if isMultipart(r) {
		form, cleanup, err := h.parseMultipart(w, r)
		if err != nil {
			h.badRequest(w, r, err.Error())
			return
		}
		defer cleanup()

		in.Title = optionalFormValue(form, "title")
		in.Description = optionalFormValue(form, "description")
		thumbnail, err := openFormFile(form, "thumbnail")
		if err != nil {
			h.badRequest(w, r, err.Error())
			return
		}
		if thumbnail != nil {
			defer thumbnail.close()
			in.Thumbnail = thumbnail.media()
		}
	} else {
		h.limitBody(w, r)
		var req updateVideoRequest
		if err := decodeJSON(r, &req); err != nil {
			h.badRequest(w, r, "Invalid request body: "+bodyError(err).Error())
			return
		}
		in.Title = req.Title
		in.Description = req.Description
	}

	video, err := h.videos.UpdateVideo(r.Context(), middleware.UserIDFromContext(r.Context()), videoID, in)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to update video")
		return
	}
	respondOK(w, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideoResult is the data of a delete response. Cleanup lists the
// follow-up steps that failed after the record itself was removed.
type DeleteVideoResult struct {
	Video   *domain.Video         `json:"video"`
	Cleanup *domain.CleanupReport `json:"cleanup"`
}

func (h *VideoHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	video, report, err := h.videos.DeleteVideo(r.Context(), middleware.UserIDFromContext(r.Context()), videoID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to delete video")
		return
	}
	if report == nil {
		report = &domain.CleanupReport{}
	}
	h.metrics.VideoDeleted(report.Failed)

	message := "Video deleted successfully"
	if !report.OK() {
		h.logger.Warn("Video deleted with incomplete cleanup", zap.String("video_id", videoID), zap.Strings("failed", report.Failed))
		message = "Video deleted; some cleanup steps failed: " + strings.Join(report.Failed, ", ")
	}
	respondOK(w, http.StatusOK, DeleteVideoResult{Video: video, Cleanup: report}, message)
}

func (h *VideoHandler) HandleTogglePublishStatus(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoId")
	video, err := h.videos.TogglePublishStatus(r.Context(), middleware.UserIDFromContext(r.Context()), videoID)
	if err != nil {
		h.respondWithError(w, r, err, "Failed to toggle publish status")
		return
	}
	message := "Video unpublished successfully"
	if video.IsPublished {
		message = "Video published successfully"
	}
	respondOK(w, http.StatusOK, video, message)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (h *VideoHandler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
}

// bodyError rewrites a size-limit failure into a client message.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
	}
	return err
}

// parseMultipart limits the body to the configured upload size and parses it.
// The returned cleanup removes any temporary files the parser created.
func (h *VideoHandler) parseMultipart(w http.ResponseWriter, r *http.Request) (*multipart.Form, func(), error) {
	h.limitBody(w, r)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if tooLarge := bodyError(err); tooLarge != err {
			return nil, nil, tooLarge
		}
		return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	form := r.MultipartForm
	return form, func() {
		if err := form.RemoveAll(); err != nil {
			h.logger.Warn("Failed to remove multipart temp files", zap.Error(err))
		}
	}, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// optionalFormValue is nil when the field was not sent at all.
func optionalFormValue(form *multipart.Form, key string) *string {
	if v, ok := form.Value[key]; ok && len(v) > 0 {
		return &v[0]
	}
	return nil
}

// uploadedFile is an opened multipart file part.
type uploadedFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

// openFormFile returns nil without error when the field is absent.
func openFormFile(form *multipart.Form, key string) (*uploadedFile, error) {
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, nil
	}
	f, err := headers[0].Open()
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", key, err)
	}
	return &uploadedFile{file: f, header: headers[0]}, nil
}

func (u *uploadedFile) media() *domain.MediaFile {
	if u == nil {
		return nil
	}
	contentType := u.header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &domain.MediaFile{
		Name:        u.header.Filename,
		ContentType: contentType,
		Size:        u.header.Size,
		Content:     u.file,
	}
}

func (u *uploadedFile) close() {
	_ = u.file.Close()
}
