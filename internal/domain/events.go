package domain

// Event subjects published on the message bus.
const (
	SubjectVideoPublished      = "video.published"
	SubjectVideoUpdated        = "video.updated"
	SubjectVideoDeleted        = "video.deleted"
	SubjectVideoPublishToggled = "video.publish_toggled"
	SubjectCommentCreated      = "comment.created"
	SubjectCommentDeleted      = "comment.deleted"
	SubjectTweetCreated        = "tweet.created"
	SubjectTweetDeleted        = "tweet.deleted"
	SubjectPlaylistCreated     = "playlist.created"
	SubjectPlaylistDeleted     = "playlist.deleted"
	SubjectLikeToggled         = "like.toggled"
	SubjectSubscriptionToggled = "subscription.toggled"
)
