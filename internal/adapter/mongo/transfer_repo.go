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

type transferDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	DomainName           string             `bson:"domain_name"`
	BuyerName            string             `bson:"buyer_name"`
	BuyerEmail           string             `bson:"buyer_email"`
	BuyerPhone           string             `bson:"buyer_phone"`
	PaymentScreenshotURL string             `bson:"payment_screenshot_url,omitempty"`
	Status               string             `bson:"status"`
	AdminNotes           string             `bson:"admin_notes,omitempty"`
	CreatedAt            time.Time          `bson:"created_at"`
	UpdatedAt            time.Time          `bson:"updated_at"`
}

func (d transferDocument) toEntity() entity.TransferRequest {
	return entity.TransferRequest{
		ID:                   hexOrEmpty(d.ID),
		DomainName:           d.DomainName,
		BuyerName:            d.BuyerName,
		BuyerEmail:           d.BuyerEmail,
		BuyerPhone:           d.BuyerPhone,
		PaymentScreenshotURL: d.PaymentScreenshotURL,
		Status:               entity.TransferStatus(d.Status),
		AdminNotes:           d.AdminNotes,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

type transferRepository struct {
	collection *mongo.Collection
}

func NewTransferRepository(db *mongo.Database) repository.TransferRepository {
	return &transferRepository{collection: db.Collection(transfersCollection)}
}

func (r *transferRepository) Create(ctx context.Context, t *entity.TransferRequest) (string, error) {
	res, err := r.collection.InsertOne(ctx, transferDocument{
		DomainName:           t.DomainName,
		BuyerName:            t.BuyerName,
		BuyerEmail:           t.BuyerEmail,
		BuyerPhone:           t.BuyerPhone,
		PaymentScreenshotURL: t.PaymentScreenshotURL,
		Status:               string(t.Status),
		AdminNotes:           t.AdminNotes,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create transfer request: %w", err)
	}
	return insertedHex(res)
}

func (r *transferRepository) GetByID(ctx context.Context, id string) (*entity.TransferRequest, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc transferDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transfer request %s: %w", id, err)
	}
	t := doc.toEntity()
	return &t, nil
}

func (r *transferRepository) List(ctx context.Context, status entity.TransferStatus) ([]entity.TransferRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []transferDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transfer requests: %w", err)
	}
	out := make([]entity.TransferRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *transferRepository) UpdateStatus(ctx context.Context, id string, status entity.TransferStatus, notes string) error {
	return setByID(ctx, r.collection, id, bson.M{
		"status":      string(status),
		"admin_notes": notes,
		"updated_at":  time.Now().UTC(),
	})
}

func (r *transferRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
