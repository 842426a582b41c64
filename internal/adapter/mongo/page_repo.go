package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pageDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	PageName        string             `bson:"page_name"`
	PageSlug        string             `bson:"page_slug"`
	MetaTitle       string             `bson:"meta_title,omitempty"`
	MetaDescription string             `bson:"meta_description,omitempty"`
	MetaKeywords    string             `bson:"meta_keywords,omitempty"`
	H1Title         string             `bson:"h1_title,omitempty"`
	PageHeading     string             `bson:"page_heading,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func toPageDocument(p *entity.PageSEO) pageDocument {
	return pageDocument{
		PageName:        p.PageName,
		PageSlug:        p.PageSlug,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		H1Title:         p.H1Title,
		PageHeading:     p.PageHeading,
		UpdatedAt:       time.Now().UTC(),
	}
}

func (d pageDocument) toEntity() entity.PageSEO {
	return entity.PageSEO{
		ID:              hexOrEmpty(d.ID),
		PageName:        d.PageName,
		PageSlug:        d.PageSlug,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		MetaKeywords:    d.MetaKeywords,
		H1Title:         d.H1Title,
		PageHeading:     d.PageHeading,
		UpdatedAt:       d.UpdatedAt,
	}
}

type pageRepository struct {
	collection *mongo.Collection
}

func NewPageRepository(db *mongo.Database) repository.PageRepository {
	return &pageRepository{collection: db.Collection(pagesCollection)}
}

func (r *pageRepository) Create(ctx context.Context, p *entity.PageSEO) (string, error) {
	res, err := r.collection.InsertOne(ctx, toPageDocument(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("page %s: %w", p.PageSlug, repository.ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	return insertedHex(res)
}

func (r *pageRepository) Update(ctx context.Context, p *entity.PageSEO) error {
	doc := toPageDocument(p)
	err := setByID(ctx, r.collection, p.ID, bson.M{
		"page_name":        doc.PageName,
		"page_slug":        doc.PageSlug,
		"meta_title":       doc.MetaTitle,
		"meta_description": doc.MetaDescription,
		"meta_keywords":    doc.MetaKeywords,
		"h1_title":         doc.H1Title,
		"page_heading":     doc.PageHeading,
		"updated_at":       doc.UpdatedAt,
	})
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("page %s: %w", p.PageSlug, repository.ErrAlreadyExists)
	}
	return err
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*entity.PageSEO, error) {
	var doc pageDocument
	if err := r.collection.FindOne(ctx, bson.M{"page_slug": slug}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page %s: %w", slug, err)
	}
	p := doc.toEntity()
	return &p, nil
}

func (r *pageRepository) List(ctx context.Context) ([]entity.PageSEO, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "page_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode pages: %w", err)
	}
	out := make([]entity.PageSEO, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *pageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
