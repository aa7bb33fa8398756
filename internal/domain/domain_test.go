package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name     string
		actor    Identity
		authorID string
		want     bool
	}{
		{"author", Identity{UserID: "u1"}, "u1", true},
		{"other user", Identity{UserID: "u2"}, "u1", false},
		{"admin on foreign resource", Identity{UserID: "u2", IsAdmin: true}, "u1", true},
		{"admin on own resource", Identity{UserID: "u1", IsAdmin: true}, "u1", true},
		{"anonymous never matches empty author", Identity{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModify(tt.actor, tt.authorID); got != tt.want {
				t.Errorf("CanModify(%+v, %q) = %v, want %v", tt.actor, tt.authorID, got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	if err := Authorize(Identity{UserID: "u1"}, "u1", "update", "blog"); err != nil {
		t.Fatalf("Authorize() for author = %v, want nil", err)
	}

	err := Authorize(Identity{UserID: "u2"}, "u1", "delete", "comment")
	if !IsForbidden(err) {
		t.Fatalf("Authorize() for stranger = %v, want forbidden", err)
	}
	if err.Error() != "you do not have permission to delete this comment" {
		t.Errorf("Authorize() message = %q", err.Error())
	}
}

func TestBlogUpdate_ApplyTo(t *testing.T) {
	base := func() *Blog {
		return &Blog{Title: "Old", Content: "Body", Category: []string{"go"}}
	}

	tests := []struct {
		name        string
		update      BlogUpdate
		want        Blog
		wantChanged bool
	}{
		{
			name:        "title only",
			update:      BlogUpdate{Title: "New Title"},
			want:        Blog{Title: "New Title", Content: "Body", Category: []string{"go"}},
			wantChanged: true,
		},
		{
			name:        "empty title is a no-op",
			update:      BlogUpdate{Title: ""},
			want:        Blog{Title: "Old", Content: "Body", Category: []string{"go"}},
			wantChanged: false,
		},
		{
			name:        "empty category keeps stored labels",
			update:      BlogUpdate{Content: "New body", Category: []string{}},
			want:        Blog{Title: "Old", Content: "New body", Category: []string{"go"}},
			wantChanged: true,
		},
		{
			name:        "all fields",
			update:      BlogUpdate{Title: "T", Content: "C", Category: []string{"a", "b"}},
			want:        Blog{Title: "T", Content: "C", Category: []string{"a", "b"}},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			changed := tt.update.ApplyTo(b)
			if changed != tt.wantChanged {
				t.Errorf("ApplyTo() changed = %v, want %v", changed, tt.wantChanged)
			}
			if b.Title != tt.want.Title || b.Content != tt.want.Content || !reflect.DeepEqual(b.Category, tt.want.Category) {
				t.Errorf("ApplyTo() = %+v, want %+v", *b, tt.want)
			}
		})
	}
}

func TestComment_ApplyContent(t *testing.T) {
	c := &Comment{Content: "first"}
	if c.ApplyContent("") {
		t.Error("ApplyContent(\"\") reported a change")
	}
	if c.Content != "first" {
		t.Errorf("Content = %q, want first", c.Content)
	}
	if !c.ApplyContent("second") || c.Content != "second" {
		t.Errorf("Content = %q, want second", c.Content)
	}
}

func TestImage_Base64(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	img := &Image{Data: raw, ContentType: "image/png"}

	got := img.Base64()
	if got != base64.StdEncoding.EncodeToString(raw) {
		t.Errorf("Base64() = %q", got)
	}

	decoded, err := base64.StdEncoding.DecodeString(got)
	if err != nil || !reflect.DeepEqual(decoded, raw) {
		t.Errorf("round trip = %v, %v", decoded, err)
	}

	var missing *Image
	if !missing.Empty() {
		t.Error("nil image should be empty")
	}
	if !(&Image{ContentType: "image/png"}).Empty() {
		t.Error("image without data should be empty")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err    error
		kind   ErrorKind
		status int
	}{
		{NewValidation("bad", nil), KindValidation, http.StatusBadRequest},
		{NewAuth("no"), KindAuth, http.StatusUnauthorized},
		{NewForbidden("no"), KindForbidden, http.StatusForbidden},
		{NewNotFound("gone"), KindNotFound, http.StatusNotFound},
		{NewConflict("dup"), KindConflict, http.StatusConflict},
		{fmt.Errorf("wrapped: %w", NewNotFound("gone")), KindNotFound, http.StatusNotFound},
		{errors.New("boom"), KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			kind := KindOf(tt.err)
			if kind != tt.kind {
				t.Errorf("KindOf(%v) = %v, want %v", tt.err, kind, tt.kind)
			}
			if kind.HTTPStatus() != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", kind.HTTPStatus(), tt.status)
			}
		})
	}
}

func TestJSONTagsMatchWireShape(t *testing.T) {
	b := Blog{ID: "b1", Title: "T", AuthorID: "u1", Author: &Author{ID: "u1", Username: "a"}}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal(Blog) error = %v", err)
	}
	if !strings.Contains(string(out), `"_id":"b1"`) || strings.Contains(string(out), "author_id") {
		t.Errorf("Marshal(Blog) = %s", out)
	}

	c := Comment{ID: "c1", BlogID: "b1", AuthorID: "u1"}
	out, err = json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal(Comment) error = %v", err)
	}
	if !strings.Contains(string(out), `"_id":"c1"`) || strings.Contains(string(out), "author_id") {
		t.Errorf("Marshal(Comment) = %s", out)
	}

	u := User{ID: "u1", PasswordHash: "hash"}
	out, err = json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal(User) error = %v", err)
	}
	if !strings.Contains(string(out), `"_id":"u1"`) || strings.Contains(string(out), "hash") {
		t.Errorf("Marshal(User) = %s", out)
	}
}
