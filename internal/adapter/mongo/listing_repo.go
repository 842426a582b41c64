package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	TLD              string             `bson:"tld"`
	Category         string             `bson:"category"`
	Price            price              `bson:"price"`
	Status           string             `bson:"status"`
	Featured         bool               `bson:"featured"`
	RegistrationDate *time.Time         `bson:"registration_date,omitempty"`
	Tagline          string             `bson:"tagline,omitempty"`
	Description      string             `bson:"description,omitempty"`
	MarketRationale  string             `bson:"market_rationale,omitempty"`
	UseCases         []string           `bson:"use_cases,omitempty"`
	USPPoints        []string           `bson:"usp_points,omitempty"`
	SimilarDomains   []string           `bson:"similar_domains,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func toListingDocument(l *entity.Listing) listingDocument {
	return listingDocument{
		Name:             l.Name,
		TLD:              l.TLD,
		Category:         l.Category,
		Price:            price(l.Price),
		Status:           string(l.Status),
		Featured:         l.Featured,
		RegistrationDate: l.RegistrationDate,
		Tagline:          l.Tagline,
		Description:      l.Description,
		MarketRationale:  l.MarketRationale,
		UseCases:         l.UseCases,
		USPPoints:        l.USPPoints,
		SimilarDomains:   l.SimilarDomains,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (d listingDocument) toEntity() entity.Listing {
	return entity.Listing{
		ID:               hexOrEmpty(d.ID),
		Name:             d.Name,
		TLD:              d.TLD,
		Category:         d.Category,
		Price:            float64(d.Price),
		Status:           entity.ListingStatus(d.Status),
		Featured:         d.Featured,
		RegistrationDate: d.RegistrationDate,
		Tagline:          d.Tagline,
		Description:      d.Description,
		MarketRationale:  d.MarketRationale,
		UseCases:         d.UseCases,
		USPPoints:        d.USPPoints,
		SimilarDomains:   d.SimilarDomains,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(db *mongo.Database) repository.ListingRepository {
	return &listingRepository{collection: db.Collection(listingsCollection)}
}

func (r *listingRepository) Create(ctx context.Context, l *entity.Listing) (string, error) {
	res, err := r.collection.InsertOne(ctx, toListingDocument(l))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("listing %s: %w", l.Name, repository.ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to create listing: %w", err)
	}
	return insertedHex(res)
}

func (r *listingRepository) InsertMany(ctx context.Context, ls []entity.Listing) (int, error) {
	if len(ls) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(ls))
	for i := range ls {
		docs = append(docs, toListingDocument(&ls[i]))
	}
	res, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res != nil && err != nil {
		return len(res.InsertedIDs), fmt.Errorf("failed to insert listings: %w", err)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert listings: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *listingRepository) findOne(ctx context.Context, filter bson.M) (*entity.Listing, error) {
	var doc listingDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	l := doc.toEntity()
	return &l, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *listingRepository) GetByName(ctx context.Context, name string) (*entity.Listing, error) {
	return r.findOne(ctx, bson.M{"name": strings.ToLower(strings.TrimSpace(name))})
}

func (r *listingRepository) Update(ctx context.Context, l *entity.Listing) error {
	doc := toListingDocument(l)
	doc.UpdatedAt = time.Now().UTC()
	l.UpdatedAt = doc.UpdatedAt

	fields := bson.M{
		"name":              doc.Name,
		"tld":               doc.TLD,
		"category":          doc.Category,
		"price":             doc.Price,
		"status":            doc.Status,
		"featured":          doc.Featured,
		"registration_date": doc.RegistrationDate,
		"tagline":           doc.Tagline,
		"description":       doc.Description,
		"market_rationale":  doc.MarketRationale,
		"use_cases":         doc.UseCases,
		"usp_points":        doc.USPPoints,
		"similar_domains":   doc.SimilarDomains,
		"updated_at":        doc.UpdatedAt,
	}
	err := setByID(ctx, r.collection, l.ID, fields)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("listing %s: %w", l.Name, repository.ErrAlreadyExists)
	}
	return err
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}

func (r *listingRepository) FindAll(ctx context.Context) ([]entity.Listing, error) {
	return r.Find(ctx, repository.ListingQuery{SortBy: "created_at", SortDesc: true})
}

func (r *listingRepository) Find(ctx context.Context, q repository.ListingQuery) ([]entity.Listing, error) {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = string(q.Status)
	}
	if q.TLD != "" {
		filter["tld"] = entity.NormalizeTLD(q.TLD)
	}
	if q.FeaturedOnly {
		filter["featured"] = true
	}

	findOptions := options.Find()
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := 1
	if q.SortDesc {
		order = -1
	}
	findOptions.SetSort(bson.D{{Key: sortBy, Value: order}, {Key: "_id", Value: 1}})
	if q.Limit > 0 {
		findOptions.SetLimit(int64(q.Limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}

	out := make([]entity.Listing, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (r *listingRepository) ExistingNames(ctx context.Context) (map[string]struct{}, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list listing names: %w", err)
	}
	defer cursor.Close(ctx)

	names := make(map[string]struct{})
	for cursor.Next(ctx) {
		var row struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode listing name: %w", err)
		}
		names[strings.ToLower(row.Name)] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing names: %w", err)
	}
	return names, nil
}

func (r *listingRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}
