package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/mocks"
	"blognest-backend/internal/service"
)

func newBlogRouter(t *testing.T, blogs *mocks.MockBlogServiceInterface) http.Handler {
	return newTestRouter(Routes{
		Auth:     NewAuthHandler(mocks.NewMockAuthServiceInterface(t)),
		Blogs:    NewBlogHandler(blogs),
		Comments: NewCommentHandler(mocks.NewMockCommentServiceInterface(t)),
	}, stubAuth(t))
}

func sampleBlog() *domain.Blog {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	return &domain.Blog{
		ID:        blogID,
		Title:     "T",
		Content:   "C",
		Category:  []string{"go", "web"},
		AuthorID:  userAID,
		Author:    &domain.Author{ID: userAID, Username: "a"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBlogHandler_CreateBlog(t *testing.T) {
	t.Run("creates from JSON", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Create(mock.Anything, identityA, service.CreateBlogInput{Title: "T", Content: "C", Category: []string{"go"}}).
			Return(sampleBlog(), nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodPost, "/api/blogs", "token-a", map[string]any{
			"title": "T", "content": "C", "category": []string{"go"},
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, blogID, resp.ID)
		assert.Equal(t, "a", resp.Author.Username)
		assert.Nil(t, resp.Image)
	})

	t.Run("creates from multipart with image", func(t *testing.T) {
		raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Create(mock.Anything, identityA, mock.MatchedBy(func(in service.CreateBlogInput) bool {
				return in.Title == "T" &&
					assert.ObjectsAreEqual([]string{"go", "web"}, in.Category) &&
					in.Image != nil &&
					bytes.Equal(raw, in.Image.Data) &&
					in.Image.ContentType == "image/png"
			})).
			RunAndReturn(func(_ context.Context, _ domain.Identity, in service.CreateBlogInput) (*domain.Blog, error) {
				b := sampleBlog()
				b.Image = in.Image
				return b, nil
			})

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		_ = writer.WriteField("title", "T")
		_ = writer.WriteField("content", "C")
		_ = writer.WriteField("category", "go")
		_ = writer.WriteField("category", "web")
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="pic.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, _ = part.Write(raw)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/blogs", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer token-a")
		w := httptest.NewRecorder()
		newBlogRouter(t, blogs).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Image)
		assert.Equal(t, base64.StdEncoding.EncodeToString(raw), resp.Image.Data)
		assert.Equal(t, "image/png", resp.Image.ContentType)
	})

	t.Run("creates from a urlencoded form", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Create(mock.Anything, identityA, service.CreateBlogInput{Title: "T", Content: "C", Category: []string{"go", "web"}}).
			Return(sampleBlog(), nil)

		w := doForm(t, newBlogRouter(t, blogs), http.MethodPost, "/api/blogs", "token-a", url.Values{
			"title": {"T"}, "content": {"C"}, "category": {"go", "web"},
		})

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)

		req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-a")
		w := httptest.NewRecorder()
		newBlogRouter(t, blogs).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})

	t.Run("validation error", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Create(mock.Anything, identityA, mock.Anything).
			Return(nil, domain.NewValidation("title is required", map[string]string{"title": "title is required"}))

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodPost, "/api/blogs", "token-a", map[string]string{"content": "C"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"title is required","fields":{"title":"title is required"}}`, w.Body.String())
	})
}

func TestBlogHandler_ListBlogs(t *testing.T) {
	t.Run("returns blogs with base64 images", func(t *testing.T) {
		b := sampleBlog()
		b.Image = &domain.Image{Data: []byte("hello"), ContentType: "image/gif"}

		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().List(mock.Anything).Return([]domain.Blog{*b}, nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs", "", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []BlogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "aGVsbG8=", resp[0].Image.Data)
		assert.Equal(t, []string{"go", "web"}, resp[0].Category)
	})

	t.Run("empty collection is 404", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().List(mock.Anything).Return(nil, domain.NewNotFound("no blogs found"))

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"no blogs found"}`, w.Body.String())
	})
}

func TestBlogHandler_ListUserBlogs(t *testing.T) {
	t.Run("lists the user's blogs", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().ListByAuthor(mock.Anything, userAID).Return([]domain.Blog{*sampleBlog()}, nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/user/"+userAID, "token-b", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/user/not-a-uuid", "token-b", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogHandler_GetBlog(t *testing.T) {
	t.Run("returns blog", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Get(mock.Anything, blogID).Return(sampleBlog(), nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/"+blogID, "", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp BlogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "T", resp.Title)
		assert.Equal(t, "2024-05-06T07:08:09Z", resp.CreatedAt)
		assert.NotContains(t, w.Body.String(), "email")
	})

	t.Run("missing blog", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Get(mock.Anything, blogID).Return(nil, domain.NewNotFound("blog not found"))

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/"+blogID, "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure is masked", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Get(mock.Anything, blogID).Return(nil, assert.AnError)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/"+blogID, "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestBlogHandler_GetBlogImage(t *testing.T) {
	t.Run("streams raw bytes", func(t *testing.T) {
		raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}

		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().GetImage(mock.Anything, blogID).Return(&domain.Image{Data: raw, ContentType: "image/jpeg"}, nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/"+blogID+"/image", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
		assert.Equal(t, raw, w.Body.Bytes())
	})

	t.Run("no image", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().GetImage(mock.Anything, blogID).Return(nil, domain.NewNotFound("image not found"))

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodGet, "/api/blogs/"+blogID+"/image", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBlogHandler_UpdateBlog(t *testing.T) {
	t.Run("passes partial update through", func(t *testing.T) {
		updated := sampleBlog()
		updated.Title = "New Title"

		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Update(mock.Anything, identityA, blogID, domain.BlogUpdate{Title: "New Title"}).
			Return(updated, nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodPut, "/api/blogs/"+blogID, "token-a", map[string]string{"title": "New Title"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"New Title"`)
		assert.Contains(t, w.Body.String(), `"content":"C"`)
	})

	t.Run("empty JSON body is an empty update", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Update(mock.Anything, identityA, blogID, domain.BlogUpdate{}).Return(sampleBlog(), nil)

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodPut, "/api/blogs/"+blogID, "token-a", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"title":"T"`)
	})

	t.Run("request without body or content type", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().Update(mock.Anything, identityA, blogID, domain.BlogUpdate{}).Return(sampleBlog(), nil)

		req := httptest.NewRequest(http.MethodPut, "/api/blogs/"+blogID, nil)
		req.Header.Set("Authorization", "Bearer token-a")
		w := httptest.NewRecorder()
		newBlogRouter(t, blogs).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("urlencoded update", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Update(mock.Anything, identityA, blogID, domain.BlogUpdate{Content: "New body"}).
			Return(sampleBlog(), nil)

		w := doForm(t, newBlogRouter(t, blogs), http.MethodPut, "/api/blogs/"+blogID, "token-a", url.Values{
			"content": {"New body"},
		})

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		blogs := mocks.NewMockBlogServiceInterface(t)
		blogs.EXPECT().
			Update(mock.Anything, identityB, blogID, mock.Anything).
			Return(nil, domain.NewForbidden("you do not have permission to update this blog"))

		w := doJSON(t, newBlogRouter(t, blogs), http.MethodPut, "/api/blogs/"+blogID, "token-b", map[string]string{"title": "x"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestBlogHandler_DeleteBlog(t *testing.T) {
	blogs := mocks.NewMockBlogServiceInterface(t)
	blogs.EXPECT().Delete(mock.Anything, identityA, blogID).Return(nil)

	w := doJSON(t, newBlogRouter(t, blogs), http.MethodDelete, "/api/blogs/"+blogID, "token-a", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"blog removed"}`, w.Body.String())
}
