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

const collectionFAQs = "faqs"

type FAQRepository struct {
	col *mongo.Collection
}

func NewFAQRepository(db *mongo.Database) *FAQRepository {
	return &FAQRepository{col: db.Collection(collectionFAQs)}
}

type faqDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Question  string             `bson:"question"`
	Answer    string             `bson:"answer"`
	Category  string             `bson:"category"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (d *faqDoc) toDomain() *domain.FAQ {
	return &domain.FAQ{
		ID:        d.ID.Hex(),
		Question:  d.Question,
		Answer:    d.Answer,
		Category:  d.Category,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := faqDoc{Question: f.Question, Answer: f.Answer, Category: f.Category, CreatedAt: f.CreatedAt}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert faq: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id string) (*domain.FAQ, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFAQNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc faqDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFAQNotFound
		}
		return nil, fmt.Errorf("find faq: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FAQRepository) List(ctx context.Context) ([]*domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	var docs []faqDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode faqs: %w", err)
	}

	out := make([]*domain.FAQ, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *FAQRepository) Update(ctx context.Context, id string, up ports.FAQUpdate) (*domain.FAQ, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrFAQNotFound
	}

	set := bson.M{"updated_at": up.UpdatedAt}
	if up.Question != nil {
		set["question"] = *up.Question
	}
	if up.Answer != nil {
		set["answer"] = *up.Answer
	}
	if up.Category != nil {
		set["category"] = *up.Category
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc faqDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, afterUpdate()).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFAQNotFound
		}
		return nil, fmt.Errorf("update faq: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrFAQNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
