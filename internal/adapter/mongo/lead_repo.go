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

type leadDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	DomainID    string             `bson:"domain_id"`
	DomainName  string             `bson:"domain_name,omitempty"`
	BuyerName   string             `bson:"buyer_name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	OfferAmount price              `bson:"offer_amount"`
	Message     string             `bson:"message"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d leadDocument) toEntity() entity.Lead {
	return entity.Lead{
		ID:          hexOrEmpty(d.ID),
		DomainID:    d.DomainID,
		DomainName:  d.DomainName,
		BuyerName:   d.BuyerName,
		Email:       d.Email,
		Phone:       d.Phone,
		OfferAmount: float64(d.OfferAmount),
		Message:     d.Message,
		Status:      entity.LeadStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) repository.LeadRepository {
	return &leadRepository{collection: db.Collection(leadsCollection)}
}

func (r *leadRepository) Create(ctx context.Context, l *entity.Lead) (string, error) {
	res, err := r.collection.InsertOne(ctx, leadDocument{
		DomainID:    l.DomainID,
		DomainName:  l.DomainName,
		BuyerName:   l.BuyerName,
		Email:       l.Email,
		Phone:       l.Phone,
		OfferAmount: price(l.OfferAmount),
		Message:     l.Message,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create lead: %w", err)
	}
	return insertedHex(res)
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc leadDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead %s: %w", id, err)
	}
	l := doc.toEntity()
	return &l, nil
}

func (r *leadRepository) find(ctx context.Context, limit int) ([]entity.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []leadDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	out := make([]entity.Lead, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *leadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	return r.find(ctx, 0)
}

func (r *leadRepository) Recent(ctx context.Context, limit int) ([]entity.Lead, error) {
	return r.find(ctx, limit)
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	return setByID(ctx, r.collection, id, bson.M{"status": string(status)})
}

func (r *leadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}
