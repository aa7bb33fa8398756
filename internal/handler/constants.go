package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// defaultImageContentType is served when an image was stored without one.
const defaultImageContentType = "application/octet-stream"

// Path parameter names shared by the blog and comment routes.
const (
	paramID        = "id"
	paramUserID    = "userId"
	paramCommentID = "commentId"
)
