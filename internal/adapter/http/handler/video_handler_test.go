package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVideoID = "665f1c2a9b1e8a3d4c5b6a70"

type multipartPart struct {
	field, filename, contentType, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...multipartPart) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename)}
		h["Content-Type"] = []string{f.contentType}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func newVideoHandlerWithMock(maxUpload int64) (*VideoHandler, *MockVideoService, *metrics.MetricsManager) {
	svc := new(MockVideoService)
	m := metrics.NewMetricsManager("videotube")
	return NewVideoHandler(svc, maxUpload, testLogger(), m), svc, m
}

func TestHandlePublishVideo_Success(t *testing.T) {
	h, svc, m := newVideoHandlerWithMock(1 << 20)
	body, contentType := multipartBody(t,
		map[string]string{"title": "Go tips", "description": "Idioms"},
		multipartPart{"videoFile", "clip.mp4", "video/mp4", "video-bytes"},
		multipartPart{"thumbnail", "thumb.png", "image/png", "png-bytes"},
	)

	var gotVideo, gotThumb string
	svc.On("PublishVideo", mock.Anything, "u1", mock.AnythingOfType("usecase.PublishVideoInput")).
		Run(func(args mock.Arguments) {
			in := args.Get(2).(usecase.PublishVideoInput)
			assert.Equal(t, "Go tips", in.Title)
			assert.Equal(t, "Idioms", in.Description)
			require.NotNil(t, in.VideoFile)
			require.NotNil(t, in.Thumbnail)
			assert.Equal(t, "clip.mp4", in.VideoFile.Name)
			assert.Equal(t, "video/mp4", in.VideoFile.ContentType)
			assert.Equal(t, int64(len("video-bytes")), in.VideoFile.Size)
			b, _ := io.ReadAll(in.VideoFile.Content)
			gotVideo = string(b)
			b, _ = io.ReadAll(in.Thumbnail.Content)
			gotThumb = string(b)
		}).
		Return(&domain.Video{ID: testVideoID, Title: "Go tips", Owner: "u1", IsPublished: true}, nil).Once()

	rec := serve("u1", http.MethodPost, "/videos", "/videos", body, contentType, h.HandlePublishVideo)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Video published successfully", env.Message)
	var video domain.Video
	require.NoError(t, json.Unmarshal(env.Data, &video))
	assert.Equal(t, testVideoID, video.ID)
	assert.Equal(t, "video-bytes", gotVideo)
	assert.Equal(t, "png-bytes", gotThumb)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VideosPublishedTotal))
	svc.AssertExpectations(t)
}

func TestHandlePublishVideo_MissingThumbnailReachesUsecaseAsNil(t *testing.T) {
	h, svc, m := newVideoHandlerWithMock(1 << 20)
	body, contentType := multipartBody(t,
		map[string]string{"title": "T", "description": "D"},
		multipartPart{"videoFile", "clip.mp4", "video/mp4", "v"},
	)
	svc.On("PublishVideo", mock.Anything, "u1", mock.MatchedBy(func(in usecase.PublishVideoInput) bool {
		return in.VideoFile != nil && in.Thumbnail == nil
	})).Return(nil, fmt.Errorf("%w: video file and thumbnail are required", domain.ErrInvalidInput)).Once()

	rec := serve("u1", http.MethodPost, "/videos", "/videos", body, contentType, h.HandlePublishVideo)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Message, "video file and thumbnail are required")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.VideosPublishedTotal))
	svc.AssertExpectations(t)
}

func TestHandlePublishVideo_StorageFailureIsInternal(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(1 << 20)
	body, contentType := multipartBody(t,
		map[string]string{"title": "T", "description": "D"},
		multipartPart{"videoFile", "clip.mp4", "video/mp4", "v"},
		multipartPart{"thumbnail", "t.png", "image/png", "t"},
	)
	svc.On("PublishVideo", mock.Anything, "u1", mock.Anything).
		Return(nil, fmt.Errorf("%w: failed to upload thumbnail: bucket gone", domain.ErrStorage)).Once()

	rec := serve("u1", http.MethodPost, "/videos", "/videos", body, contentType, h.HandlePublishVideo)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Failed to publish video", env.Message)
	assert.NotContains(t, env.Message, "bucket gone")
}

func TestHandlePublishVideo_BodyTooLarge(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(64)
	body, contentType := multipartBody(t,
		map[string]string{"title": "T", "description": "D"},
		multipartPart{"videoFile", "clip.mp4", "video/mp4", string(bytes.Repeat([]byte("x"), 1024))},
	)

	rec := serve("u1", http.MethodPost, "/videos", "/videos", body, contentType, h.HandlePublishVideo)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	decodeEnvelope(t, rec)
	svc.AssertNotCalled(t, "PublishVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleUpdateVideo_JSONBodyTooLarge(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(64)
	title := string(bytes.Repeat([]byte("t"), 512))

	rec := serve("u1", http.MethodPatch, "/videos/{videoId}", "/videos/"+testVideoID, jsonBody(map[string]string{"title": title}), "application/json", h.HandleUpdateVideo)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Message, "request body exceeds 64 bytes")
	svc.AssertNotCalled(t, "UpdateVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePublishVideo_NotMultipart(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(1 << 20)

	rec := serve("u1", http.MethodPost, "/videos", "/videos", jsonBody(map[string]string{"title": "T"}), "application/json", h.HandlePublishVideo)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "PublishVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleGetVideo_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("get video: %w", domain.ErrNotFound), http.StatusNotFound},
		{"malformed id", fmt.Errorf("%w: invalid id", domain.ErrInvalidInput), http.StatusBadRequest},
		{"store failure", fmt.Errorf("%w: get video: timeout", domain.ErrRepository), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newVideoHandlerWithMock(0)
			svc.On("GetVideo", mock.Anything, "u1", "abc").Return(nil, tt.err).Once()

			rec := serve("u1", http.MethodGet, "/videos/{videoId}", "/videos/abc", nil, "", h.HandleGetVideo)

			assert.Equal(t, tt.wantCode, rec.Code)
			decodeEnvelope(t, rec)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListVideos_Pagination(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)
	videos := []*domain.Video{{ID: "v1"}, {ID: "v2"}}
	svc.On("ListOwnVideos", mock.Anything, "u1", domain.Page{Page: 2, Limit: 2}).Return(videos, int64(5), nil).Once()

	rec := serve("u1", http.MethodGet, "/videos", "/videos?page=2&limit=2", nil, "", h.HandleListVideos)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var result struct {
		Items []domain.Video `json:"items"`
		Total int64          `json:"total"`
		Page  int            `json:"page"`
		Limit int            `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 2, result.Page)
	svc.AssertExpectations(t)
}

func TestHandleUpdateVideo_JSONTitleOnly(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)
	svc.On("UpdateVideo", mock.Anything, "u1", testVideoID, mock.MatchedBy(func(in usecase.UpdateVideoInput) bool {
		return in.Title != nil && *in.Title == "New" && in.Description == nil && in.Thumbnail == nil
	})).Return(&domain.Video{ID: testVideoID, Title: "New"}, nil).Once()

	rec := serve("u1", http.MethodPatch, "/videos/{videoId}", "/videos/"+testVideoID,
		jsonBody(map[string]string{"title": "New"}), "application/json", h.HandleUpdateVideo)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleUpdateVideo_MultipartThumbnail(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(1 << 20)
	body, contentType := multipartBody(t, map[string]string{"description": "D2"},
		multipartPart{"thumbnail", "new.jpg", "image/jpeg", "jpg"})

	svc.On("UpdateVideo", mock.Anything, "u1", testVideoID, mock.MatchedBy(func(in usecase.UpdateVideoInput) bool {
		return in.Title == nil && in.Description != nil && *in.Description == "D2" &&
			in.Thumbnail != nil && in.Thumbnail.Name == "new.jpg" && in.Thumbnail.ContentType == "image/jpeg"
	})).Return(&domain.Video{ID: testVideoID}, nil).Once()

	rec := serve("u1", http.MethodPatch, "/videos/{videoId}", "/videos/"+testVideoID, body, contentType, h.HandleUpdateVideo)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleUpdateVideo_ForbiddenForNonOwner(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)
	svc.On("UpdateVideo", mock.Anything, "u2", testVideoID, mock.Anything).
		Return(nil, fmt.Errorf("%w: you cannot update this video", domain.ErrForbidden)).Once()

	rec := serve("u2", http.MethodPatch, "/videos/{videoId}", "/videos/"+testVideoID,
		jsonBody(map[string]string{"title": "Hijack"}), "application/json", h.HandleUpdateVideo)

	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestHandleUpdateVideo_MalformedJSON(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)

	rec := serve("u1", http.MethodPatch, "/videos/{videoId}", "/videos/"+testVideoID,
		bytes.NewBufferString("{"), "application/json", h.HandleUpdateVideo)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleDeleteVideo_ReportsCleanupFailures(t *testing.T) {
	h, svc, m := newVideoHandlerWithMock(0)
	report := &domain.CleanupReport{Failed: []string{"video file", "likes"}}
	svc.On("DeleteVideo", mock.Anything, "u1", testVideoID).Return(&domain.Video{ID: testVideoID}, report, nil).Once()

	rec := serve("u1", http.MethodDelete, "/videos/{videoId}", "/videos/"+testVideoID, nil, "", h.HandleDeleteVideo)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Message, "video file, likes")
	var result struct {
		Video   domain.Video         `json:"video"`
		Cleanup domain.CleanupReport `json:"cleanup"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, testVideoID, result.Video.ID)
	assert.Equal(t, []string{"video file", "likes"}, result.Cleanup.Failed)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VideosDeletedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CleanupFailuresTotal.WithLabelValues("likes")))
}

func TestHandleDeleteVideo_CleanSuccess(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)
	svc.On("DeleteVideo", mock.Anything, "u1", testVideoID).Return(&domain.Video{ID: testVideoID}, &domain.CleanupReport{}, nil).Once()

	rec := serve("u1", http.MethodDelete, "/videos/{videoId}", "/videos/"+testVideoID, nil, "", h.HandleDeleteVideo)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Video deleted successfully", decodeEnvelope(t, rec).Message)
}

func TestHandleTogglePublishStatus(t *testing.T) {
	tests := []struct {
		published   bool
		wantMessage string
	}{
		{published: true, wantMessage: "Video published successfully"},
		{published: false, wantMessage: "Video unpublished successfully"},
	}
	for _, tt := range tests {
		h, svc, _ := newVideoHandlerWithMock(0)
		svc.On("TogglePublishStatus", mock.Anything, "u1", testVideoID).Return(&domain.Video{ID: testVideoID, IsPublished: tt.published}, nil).Once()

		rec := serve("u1", http.MethodPatch, "/videos/toggle/publish/{videoId}", "/videos/toggle/publish/"+testVideoID, nil, "", h.HandleTogglePublishStatus)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, tt.wantMessage, env.Message)
		var video domain.Video
		require.NoError(t, json.Unmarshal(env.Data, &video))
		assert.Equal(t, tt.published, video.IsPublished)
	}
}

func TestHandleListVideos_Unauthenticated(t *testing.T) {
	h, svc, _ := newVideoHandlerWithMock(0)
	svc.On("ListOwnVideos", mock.Anything, "", mock.Anything).Return(nil, int64(0), domain.ErrUnauthorized).Once()

	rec := serve("", http.MethodGet, "/videos", "/videos", nil, "", h.HandleListVideos)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
