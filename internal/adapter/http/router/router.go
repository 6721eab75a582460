package router

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/handler"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/adapter/http/middleware"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the route table dispatches to.
type Handlers struct {
	Videos        *handler.VideoHandler
	Comments      *handler.CommentHandler
	Tweets        *handler.TweetHandler
	Playlists     *handler.PlaylistHandler
	Likes         *handler.LikeHandler
	Subscriptions *handler.SubscriptionHandler
	Dashboard     *handler.DashboardHandler
	Health        *handler.HealthHandler
}

// NewRouter builds the HTTP surface. Everything under /api/v1 needs a valid token.
func NewRouter(h Handlers, jwtSecret string, log *logger.Logger, m *metrics.MetricsManager) http.Handler {
	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(middleware.Tracing())
	mux.Use(middleware.Logger(log))
	mux.Use(middleware.Metrics(m))
	mux.Use(chimw.Recoverer)

	mux.Get("/healthz", h.Health.HandleHealth)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret, log))

		SetupVideoRoutes(r, h.Videos)
		SetupCommentRoutes(r, h.Comments)
		SetupTweetRoutes(r, h.Tweets)
		SetupPlaylistRoutes(r, h.Playlists)
		SetupLikeRoutes(r, h.Likes)
		SetupSubscriptionRoutes(r, h.Subscriptions)
		SetupDashboardRoutes(r, h.Dashboard)
	})
	return mux
}

func SetupVideoRoutes(r chi.Router, h *handler.VideoHandler) {
	r.Get("/videos", h.HandleListVideos)
	r.Post("/videos", h.HandlePublishVideo)
	r.Get("/videos/{videoId}", h.HandleGetVideo)
	r.Patch("/videos/{videoId}", h.HandleUpdateVideo)
	r.Delete("/videos/{videoId}", h.HandleDeleteVideo)
	r.Patch("/videos/toggle/publish/{videoId}", h.HandleTogglePublishStatus)
}

// SetupCommentRoutes shares one path segment between video ids (list, add) and
// comment ids (update, delete); chi keeps param names per method.
func SetupCommentRoutes(r chi.Router, h *handler.CommentHandler) {
	r.Get("/comments/{videoId}", h.HandleListComments)
	r.Post("/comments/{videoId}", h.HandleAddComment)
	r.Patch("/comments/{commentId}", h.HandleUpdateComment)
	r.Delete("/comments/{commentId}", h.HandleDeleteComment)
}

func SetupTweetRoutes(r chi.Router, h *handler.TweetHandler) {
	r.Post("/tweets", h.HandleCreateTweet)
	r.Get("/tweets/user/{userId}", h.HandleListUserTweets)
	r.Patch("/tweets/{tweetId}", h.HandleUpdateTweet)
	r.Delete("/tweets/{tweetId}", h.HandleDeleteTweet)
}

func SetupPlaylistRoutes(r chi.Router, h *handler.PlaylistHandler) {
	r.Post("/playlists", h.HandleCreatePlaylist)
	r.Get("/playlists/user/{userId}", h.HandleListUserPlaylists)
	r.Get("/playlists/{playlistId}", h.HandleGetPlaylist)
	r.Patch("/playlists/{playlistId}", h.HandleUpdatePlaylist)
	r.Delete("/playlists/{playlistId}", h.HandleDeletePlaylist)
	r.Post("/playlists/{playlistId}/videos", h.HandleAddVideo)
	r.Delete("/playlists/{playlistId}/videos/{videoId}", h.HandleRemoveVideo)
}

func SetupLikeRoutes(r chi.Router, h *handler.LikeHandler) {
	r.Post("/likes/video/{videoId}", h.HandleToggleVideoLike)
	r.Post("/likes/comment/{commentId}", h.HandleToggleCommentLike)
	r.Post("/likes/tweet/{tweetId}", h.HandleToggleTweetLike)
	r.Get("/likes/videos", h.HandleListLikedVideos)
}

func SetupSubscriptionRoutes(r chi.Router, h *handler.SubscriptionHandler) {
	r.Get("/subscriptions/channel/{channelId}", h.HandleListSubscribers)
	r.Post("/subscriptions/channel/{channelId}", h.HandleToggleSubscription)
	r.Get("/subscriptions/subscriber/{subscriberId}", h.HandleListSubscribedChannels)
}

func SetupDashboardRoutes(r chi.Router, h *handler.DashboardHandler) {
	r.Get("/dashboard/stats", h.HandleChannelStats)
	r.Get("/dashboard/videos", h.HandleChannelVideos)
}
