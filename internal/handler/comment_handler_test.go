package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/mocks"
)

func newCommentRouter(t *testing.T, comments *mocks.MockCommentServiceInterface) http.Handler {
	return newTestRouter(Routes{
		Auth:     NewAuthHandler(mocks.NewMockAuthServiceInterface(t)),
		Blogs:    NewBlogHandler(mocks.NewMockBlogServiceInterface(t)),
		Comments: NewCommentHandler(comments),
	}, stubAuth(t))
}

func sampleComment() *domain.Comment {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	return &domain.Comment{
		ID:        cmtID,
		Content:   "nice post",
		BlogID:    blogID,
		AuthorID:  userBID,
		Author:    &domain.Author{ID: userBID, Username: "b"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCommentHandler_ListComments(t *testing.T) {
	t.Run("empty list is 200", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().List(mock.Anything, blogID).Return([]domain.Comment{}, nil)

		w := doJSON(t, newCommentRouter(t, comments), http.MethodGet, "/api/blogs/"+blogID+"/comments", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns comments with author projection", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().List(mock.Anything, blogID).Return([]domain.Comment{*sampleComment()}, nil)

		w := doJSON(t, newCommentRouter(t, comments), http.MethodGet, "/api/blogs/"+blogID+"/comments", "", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "b", resp[0].Author.Username)
		assert.Equal(t, blogID, resp[0].BlogID)
	})
}

func TestCommentHandler_CreateComment(t *testing.T) {
	t.Run("creates comment", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().Create(mock.Anything, identityB, blogID, "nice post").Return(sampleComment(), nil)

		w := doJSON(t, newCommentRouter(t, comments), http.MethodPost, "/api/blogs/"+blogID+"/comments", "token-b",
			map[string]string{"content": "nice post"})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"b"`)
	})

	t.Run("accepts a urlencoded form", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().Create(mock.Anything, identityB, blogID, "nice post").Return(sampleComment(), nil)

		w := doForm(t, newCommentRouter(t, comments), http.MethodPost, "/api/blogs/"+blogID+"/comments", "token-b",
			url.Values{"content": {"nice post"}})

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("unknown blog", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().Create(mock.Anything, identityB, blogID, "hello").Return(nil, domain.NewNotFound("blog not found"))

		w := doJSON(t, newCommentRouter(t, comments), http.MethodPost, "/api/blogs/"+blogID+"/comments", "token-b",
			map[string]string{"content": "hello"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"blog not found"}`, w.Body.String())
	})
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	for _, path := range []string{
		"/api/comments/" + cmtID,
		"/api/blogs/" + blogID + "/comments/" + cmtID,
	} {
		t.Run(path, func(t *testing.T) {
			updated := sampleComment()
			updated.Content = "edited"

			comments := mocks.NewMockCommentServiceInterface(t)
			comments.EXPECT().Update(mock.Anything, identityB, cmtID, "edited").Return(updated, nil)

			w := doJSON(t, newCommentRouter(t, comments), http.MethodPut, path, "token-b", map[string]string{"content": "edited"})

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"content":"edited"`)
		})
	}

	t.Run("forbidden for non-owner", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().Update(mock.Anything, identityA, cmtID, "x").
			Return(nil, domain.NewForbidden("you do not have permission to update this comment"))

		w := doJSON(t, newCommentRouter(t, comments), http.MethodPut, "/api/comments/"+cmtID, "token-a", map[string]string{"content": "x"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	t.Run("removes comment", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)
		comments.EXPECT().Delete(mock.Anything, identityB, cmtID).Return(nil)

		w := doJSON(t, newCommentRouter(t, comments), http.MethodDelete, "/api/comments/"+cmtID, "token-b", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"comment removed"}`, w.Body.String())
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		comments := mocks.NewMockCommentServiceInterface(t)

		w := doJSON(t, newCommentRouter(t, comments), http.MethodDelete, "/api/comments/42", "token-b", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
