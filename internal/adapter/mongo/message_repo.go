package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

type messageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{collection: db.Collection(messagesCollection)}
}

func (r *messageRepository) Create(ctx context.Context, m *entity.ContactMessage) (string, error) {
	res, err := r.collection.InsertOne(ctx, messageDocument{
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create contact message: %w", err)
	}
	return insertedHex(res)
}

func (r *messageRepository) List(ctx context.Context, status entity.MessageStatus) ([]entity.ContactMessage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []messageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	out := make([]entity.ContactMessage, 0, len(docs))
	for _, d := range docs {
		out = append(out, entity.ContactMessage{
			ID:        hexOrEmpty(d.ID),
			Name:      d.Name,
			Email:     d.Email,
			Subject:   d.Subject,
			Message:   d.Message,
			Status:    entity.MessageStatus(d.Status),
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	return setByID(ctx, r.collection, id, bson.M{"status": string(status)})
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
