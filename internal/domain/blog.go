package domain

import (
	"encoding/base64"
	"time"
)

// Blog represents a blog post. Author is populated on read paths only. The
// json tags follow the wire shape; AuthorID travels inside Author.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  []string  `json:"category"`
	AuthorID  string    `json:"-"`
	Author    *Author   `json:"author,omitempty"`
	Image     *Image    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Image is an attachment stored inline as raw bytes.
type Image struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
}

// Base64 returns the text-safe encoding used when the image is embedded in
// a JSON body. The stored form is always the raw bytes.
func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// Empty reports whether there is no image data to serve.
func (i *Image) Empty() bool {
	return i == nil || len(i.Data) == 0
}

// BlogUpdate carries the mutable blog fields of an update request.
type BlogUpdate struct {
	Title    string
	Content  string
	Category []string
}

// ApplyTo overwrites the fields of b that are set in u. Empty strings and
// empty category lists are treated as absent and leave b unchanged.
// It reports whether anything was changed.
func (u BlogUpdate) ApplyTo(b *Blog) bool {
	changed := false
	if u.Title != "" {
		b.Title = u.Title
		changed = true
	}
	if u.Content != "" {
		b.Content = u.Content
		changed = true
	}
	if len(u.Category) > 0 {
		b.Category = append([]string(nil), u.Category...)
		changed = true
	}
	return changed
}
