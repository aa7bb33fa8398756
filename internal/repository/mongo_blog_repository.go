package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blognest-backend/internal/domain"
)

type imageDocument struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"content_type"`
}

type blogDocument struct {
	ID        string         `bson:"_id"`
	Title     string         `bson:"title"`
	Content   string         `bson:"content"`
	Category  []string       `bson:"category"`
	AuthorID  string         `bson:"author"`
	Image     *imageDocument `bson:"image"`
	CreatedAt time.Time      `bson:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at"`

	// Populated by the $lookup stage on reads.
	Authors []authorDocument `bson:"authors,omitempty"`
}

type authorDocument struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
}

func (d blogDocument) toDomain() domain.Blog {
	b := domain.Blog{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		AuthorID:  d.AuthorID,
		Author:    &domain.Author{ID: d.AuthorID},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if len(d.Authors) > 0 {
		b.Author.Username = d.Authors[0].Username
	}
	if d.Image != nil {
		b.Image = &domain.Image{Data: d.Image.Data, ContentType: d.Image.ContentType}
	}
	if b.Category == nil {
		b.Category = []string{}
	}
	return b
}

// authorLookup joins the author's display projection into "authors".
func authorLookup() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: UsersCollection},
		{Key: "localField", Value: "author"},
		{Key: "foreignField", Value: "_id"},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$project", Value: bson.D{{Key: "username", Value: 1}}}},
		}},
		{Key: "as", Value: "authors"},
	}}}
}

// MongoBlogRepository implements BlogRepository using MongoDB.
type MongoBlogRepository struct {
	coll *mongo.Collection
}

// NewMongoBlogRepository creates a new MongoBlogRepository.
func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{coll: db.Collection(BlogsCollection)}
}

// Create inserts a new blog. A nil image is stored as null.
func (r *MongoBlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	doc := blogDocument{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Category:  blog.Category,
		AuthorID:  blog.AuthorID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	if doc.Category == nil {
		doc.Category = []string{}
	}
	if blog.Image != nil {
		doc.Image = &imageDocument{Data: blog.Image.Data, ContentType: blog.Image.ContentType}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// GetByID retrieves a blog with its author projection.
func (r *MongoBlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	blogs, err := r.aggregate(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	if len(blogs) == 0 {
		return nil, nil
	}
	return &blogs[0], nil
}

// List returns blogs in creation order, optionally restricted to one author.
func (r *MongoBlogRepository) List(ctx context.Context, authorID string) ([]domain.Blog, error) {
	filter := bson.D{}
	if authorID != "" {
		filter = bson.D{{Key: "author", Value: authorID}}
	}

	blogs, err := r.aggregate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (r *MongoBlogRepository) aggregate(ctx context.Context, filter bson.D) ([]domain.Blog, error) {
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

	blogs := make([]domain.Blog, 0)
	for cursor.Next(ctx) {
		var doc blogDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, doc.toDomain())
	}

	return blogs, cursor.Err()
}

// GetImage returns the stored image without loading the rest of the blog.
func (r *MongoBlogRepository) GetImage(ctx context.Context, id string) (*domain.Image, error) {
	var doc struct {
		Image *imageDocument `bson:"image"`
	}

	opts := options.FindOne().SetProjection(bson.D{{Key: "image", Value: 1}})
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog image: %w", err)
	}
	if doc.Image == nil {
		return nil, nil
	}

	return &domain.Image{Data: doc.Image.Data, ContentType: doc.Image.ContentType}, nil
}

// Update writes the mutable fields of blog.
func (r *MongoBlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	category := blog.Category
	if category == nil {
		category = []string{}
	}

	res, err := r.coll.UpdateByID(ctx, blog.ID, bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: blog.Title},
		{Key: "content", Value: blog.Content},
		{Key: "category", Value: category},
		{Key: "updated_at", Value: blog.UpdatedAt},
	}}})
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("blog not found")
	}
	return nil
}

// Delete removes a blog. Its comments are left in place.
func (r *MongoBlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("blog not found")
	}
	return nil
}
