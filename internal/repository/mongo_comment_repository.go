package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blognest-backend/internal/domain"
)

type commentDocument struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	BlogID    string    `bson:"blog"`
	AuthorID  string    `bson:"author"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`

	Authors []authorDocument `bson:"authors,omitempty"`
}

func (d commentDocument) toDomain() domain.Comment {
	c := domain.Comment{
		ID:        d.ID,
		Content:   d.Content,
		BlogID:    d.BlogID,
		AuthorID:  d.AuthorID,
		Author:    &domain.Author{ID: d.AuthorID},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if len(d.Authors) > 0 {
		c.Author.Username = d.Authors[0].Username
	}
	return c
}

// MongoCommentRepository implements CommentRepository using MongoDB.
type MongoCommentRepository struct {
	coll *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository.
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(CommentsCollection)}
}

// Create inserts a new comment. The caller verifies the blog exists.
func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.coll.InsertOne(ctx, commentDocument{
		ID:        comment.ID,
		Content:   comment.Content,
		BlogID:    comment.BlogID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment with its author projection.
func (r *MongoCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comments, err := r.aggregate(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if len(comments) == 0 {
		return nil, nil
	}
	return &comments[0], nil
}

// ListByBlog returns the comments of a blog in creation order.
func (r *MongoCommentRepository) ListByBlog(ctx context.Context, blogID string) ([]domain.Comment, error) {
	comments, err := r.aggregate(ctx, bson.D{{Key: "blog", Value: blogID}})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *MongoCommentRepository) aggregate(ctx context.Context, filter bson.D) ([]domain.Comment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		authorLookup(),
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := make([]domain.Comment, 0)
	for cursor.Next(ctx) {
		var doc commentDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}

	return comments, cursor.Err()
}

// Update writes the comment content.
func (r *MongoCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	res, err := r.coll.UpdateByID(ctx, comment.ID, bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: comment.Content},
		{Key: "updated_at", Value: comment.UpdatedAt},
	}}})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("comment not found")
	}
	return nil
}

// Delete removes a comment.
func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("comment not found")
	}
	return nil
}
