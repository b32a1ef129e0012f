package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

const collectionArticles = "articles"

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

type articleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Excerpt   string             `bson:"excerpt,omitempty"`
	Content   string             `bson:"content"`
	Image     string             `bson:"image,omitempty"`
	Status    string             `bson:"status"`
	AuthorID  string             `bson:"author_id"`
	Author    string             `bson:"author,omitempty"`
	Tags      []string           `bson:"tags"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (d *articleDoc) toDomain() *domain.Article {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Article{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Excerpt:   d.Excerpt,
		Content:   d.Content,
		Image:     d.Image,
		Status:    domain.ArticleStatus(d.Status),
		AuthorID:  d.AuthorID,
		Author:    d.Author,
		Tags:      tags,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := articleDoc{
		Title:     a.Title,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Image:     a.Image,
		Status:    string(a.Status),
		AuthorID:  a.AuthorID,
		Author:    a.Author,
		Tags:      a.Tags,
		CreatedAt: a.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrArticleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns matching articles, newest first.
func (r *ArticleRepository) List(ctx context.Context, f ports.ArticleFilter) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = string(f.Status)
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	var docs []articleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	out := make([]*domain.Article, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Update applies up in a single FindOneAndUpdate. With ExpectStatus set the
// filter also matches the stored status, so a concurrent transition loses.
func (r *ArticleRepository) Update(ctx context.Context, id string, up ports.ArticleUpdate) (*domain.Article, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrArticleNotFound
	}

	set := bson.M{"updated_at": up.UpdatedAt}
	if up.Title != nil {
		set["title"] = *up.Title
	}
	if up.Excerpt != nil {
		set["excerpt"] = *up.Excerpt
	}
	if up.Content != nil {
		set["content"] = *up.Content
	}
	if up.Image != nil {
		set["image"] = *up.Image
	}
	if up.Tags != nil {
		set["tags"] = *up.Tags
	}
	if up.Status != nil {
		set["status"] = string(*up.Status)
	}

	filter := bson.M{"_id": oid}
	if up.ExpectStatus != nil {
		filter["status"] = string(*up.ExpectStatus)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, afterUpdate()).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("update article: %w", err)
		}
		if up.ExpectStatus != nil {
			if found, cerr := exists(ctx, r.col, oid); cerr == nil && found {
				return nil, domain.ErrInvalidTransition
			}
		}
		return nil, domain.ErrArticleNotFound
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrArticleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	return err
}
