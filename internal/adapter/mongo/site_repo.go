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

// The settings document is a singleton stored under a fixed key.
const settingsKey = "global"

type settingsDocument struct {
	Key          string    `bson:"_id"`
	SiteName     string    `bson:"site_name"`
	ContactEmail string    `bson:"contact_email"`
	SupportPhone string    `bson:"support_phone"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type footerDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	HeadingText string             `bson:"heading_text"`
	Email       string             `bson:"email"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type socialLinkDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Platform  string             `bson:"platform"`
	URL       string             `bson:"url"`
	IconName  string             `bson:"icon_name"`
	Order     int                `bson:"order"`
	CreatedAt time.Time          `bson:"created_at"`
}

type siteRepository struct {
	settings *mongo.Collection
	footer   *mongo.Collection
	social   *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) repository.SiteRepository {
	return &siteRepository{
		settings: db.Collection(settingsCollection),
		footer:   db.Collection(footerCollection),
		social:   db.Collection(socialLinksCollection),
	}
}

func (r *siteRepository) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	var doc settingsDocument
	if err := r.settings.FindOne(ctx, bson.M{"_id": settingsKey}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &entity.SiteSettings{
		SiteName:     doc.SiteName,
		ContactEmail: doc.ContactEmail,
		SupportPhone: doc.SupportPhone,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (r *siteRepository) SaveSettings(ctx context.Context, s *entity.SiteSettings) error {
	s.UpdatedAt = time.Now().UTC()
	doc := settingsDocument{
		Key:          settingsKey,
		SiteName:     s.SiteName,
		ContactEmail: s.ContactEmail,
		SupportPhone: s.SupportPhone,
		UpdatedAt:    s.UpdatedAt,
	}
	_, err := r.settings.ReplaceOne(ctx, bson.M{"_id": settingsKey}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *siteRepository) GetFooterContact(ctx context.Context) (*entity.FooterContact, error) {
	var doc footerDocument
	if err := r.footer.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get footer contact: %w", err)
	}
	return &entity.FooterContact{
		ID:          hexOrEmpty(doc.ID),
		HeadingText: doc.HeadingText,
		Email:       doc.Email,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

// SaveFooterContact updates the existing footer block or inserts the first one.
func (r *siteRepository) SaveFooterContact(ctx context.Context, c *entity.FooterContact) error {
	c.UpdatedAt = time.Now().UTC()
	if c.ID != "" {
		return setByID(ctx, r.footer, c.ID, bson.M{
			"heading_text": c.HeadingText,
			"email":        c.Email,
			"updated_at":   c.UpdatedAt,
		})
	}
	res, err := r.footer.InsertOne(ctx, footerDocument{
		HeadingText: c.HeadingText,
		Email:       c.Email,
		UpdatedAt:   c.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create footer contact: %w", err)
	}
	id, err := insertedHex(res)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *siteRepository) ListSocialLinks(ctx context.Context) ([]entity.SocialLink, error) {
	cursor, err := r.social.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []socialLinkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode social links: %w", err)
	}
	out := make([]entity.SocialLink, 0, len(docs))
	for _, d := range docs {
		out = append(out, entity.SocialLink{
			ID:        hexOrEmpty(d.ID),
			Platform:  d.Platform,
			URL:       d.URL,
			IconName:  d.IconName,
			Order:     d.Order,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

func (r *siteRepository) CreateSocialLink(ctx context.Context, l *entity.SocialLink) (string, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	res, err := r.social.InsertOne(ctx, socialLinkDocument{
		Platform:  l.Platform,
		URL:       l.URL,
		IconName:  l.IconName,
		Order:     l.Order,
		CreatedAt: l.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create social link: %w", err)
	}
	return insertedHex(res)
}

func (r *siteRepository) UpdateSocialLink(ctx context.Context, l *entity.SocialLink) error {
	return setByID(ctx, r.social, l.ID, bson.M{
		"platform":  l.Platform,
		"url":       l.URL,
		"icon_name": l.IconName,
		"order":     l.Order,
	})
}

func (r *siteRepository) DeleteSocialLink(ctx context.Context, id string) error {
	return deleteByID(ctx, r.social, id)
}

func (r *siteRepository) CountSocialLinks(ctx context.Context) (int64, error) {
	n, err := r.social.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count social links: %w", err)
	}
	return n, nil
}
