package domain

import "time"

// Comment represents a comment on a blog. Author is populated on read paths.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	BlogID    string    `json:"blog"`
	AuthorID  string    `json:"-"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplyContent overwrites the comment content unless content is empty.
func (c *Comment) ApplyContent(content string) bool {
	if content == "" {
		return false
	}
	c.Content = content
	return true
}
