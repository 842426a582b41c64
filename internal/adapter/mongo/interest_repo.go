package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type interestDocument struct {
	DomainID     string    `bson:"domain_id"`
	IPAddress    string    `bson:"ip_address"`
	ViewDuration int       `bson:"view_duration"`
	CreatedAt    time.Time `bson:"created_at"`
}

type interestRepository struct {
	collection *mongo.Collection
}

func NewInterestRepository(db *mongo.Database) repository.InterestRepository {
	return &interestRepository{collection: db.Collection(interestCollection)}
}

func (r *interestRepository) Log(ctx context.Context, l *entity.InterestLog) error {
	_, err := r.collection.InsertOne(ctx, interestDocument{
		DomainID:     l.DomainID,
		IPAddress:    l.IPAddress,
		ViewDuration: l.ViewDuration,
		CreatedAt:    l.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to log interest for %s: %w", l.DomainID, err)
	}
	return nil
}

func (r *interestRepository) UniqueVisitorsSince(ctx context.Context, domainID string, since time.Time) (int64, error) {
	filter := bson.M{
		"domain_id":  domainID,
		"created_at": bson.M{"$gte": since},
	}
	ips, err := r.collection.Distinct(ctx, "ip_address", filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count unique visitors for %s: %w", domainID, err)
	}
	return int64(len(ips)), nil
}
