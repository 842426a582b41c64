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

type orderDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	DomainID   string             `bson:"domain_id"`
	DomainName string             `bson:"domain_name,omitempty"`
	BuyerName  string             `bson:"buyer_name"`
	BuyerEmail string             `bson:"buyer_email"`
	Price      price              `bson:"price"`
	Status     string             `bson:"status"`
	Notes      string             `bson:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	Version    int64              `bson:"version"`
}

func (d orderDocument) toEntity() entity.Order {
	return entity.Order{
		ID:         hexOrEmpty(d.ID),
		DomainID:   d.DomainID,
		DomainName: d.DomainName,
		BuyerName:  d.BuyerName,
		BuyerEmail: d.BuyerEmail,
		Price:      float64(d.Price),
		Status:     entity.OrderStatus(d.Status),
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		Version:    d.Version,
	}
}

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: db.Collection(ordersCollection)}
}

func (r *orderRepository) Create(ctx context.Context, o *entity.Order) (string, error) {
	now := time.Now().UTC()
	doc := orderDocument{
		DomainID:   o.DomainID,
		DomainName: o.DomainName,
		BuyerName:  o.BuyerName,
		BuyerEmail: o.BuyerEmail,
		Price:      price(o.Price),
		Status:     string(o.Status),
		Notes:      o.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return insertedHex(res)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc orderDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	o := doc.toEntity()
	return &o, nil
}

// Update applies the change only if the stored version still matches params.Version.
func (r *orderRepository) Update(ctx context.Context, params repository.UpdateOrderParams) error {
	objID, err := parseID(params.OrderID)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": objID, "version": params.Version}
	update := bson.M{
		"$set": bson.M{
			"buyer_name":  params.BuyerName,
			"buyer_email": params.BuyerEmail,
			"price":       price(params.Price),
			"status":      string(params.Status),
			"notes":       params.Notes,
			"updated_at":  time.Now().UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", params.OrderID, err)
	}
	if result.MatchedCount == 0 {
		var existing orderDocument
		errFind := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
		if errors.Is(errFind, mongo.ErrNoDocuments) {
			return repository.ErrNotFound
		}
		if errFind == nil && existing.Version != params.Version {
			return repository.ErrOptimisticLock
		}
		return repository.ErrUpdateFailed
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *orderRepository) List(ctx context.Context, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	filter := bson.M{}
	if params.Status != "" {
		filter["status"] = string(params.Status)
	}

	findOptions := options.Find()
	if params.PageSize > 0 {
		if params.Page <= 0 {
			params.Page = 1
		}
		findOptions.SetSkip(int64((params.Page - 1) * params.PageSize))
		findOptions.SetLimit(int64(params.PageSize))
	}
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	findOptions.SetSort(bson.D{{Key: sortBy, Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode listed orders: %w", err)
	}
	orders := make([]entity.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toEntity())
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (int(totalCount) + params.PageSize - 1) / params.PageSize
	} else if totalCount > 0 {
		totalPages = 1
	}

	return &repository.ListOrdersResult{
		Orders:      orders,
		TotalCount:  totalCount,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
	}, nil
}

func (r *orderRepository) Count(ctx context.Context, status entity.OrderStatus) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}
