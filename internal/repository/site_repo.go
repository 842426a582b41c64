package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

// SiteRepository stores the singleton settings document, the footer contact block and social links.
type SiteRepository interface {
	GetSettings(ctx context.Context) (*entity.SiteSettings, error)
	SaveSettings(ctx context.Context, s *entity.SiteSettings) error

	GetFooterContact(ctx context.Context) (*entity.FooterContact, error)
	SaveFooterContact(ctx context.Context, c *entity.FooterContact) error

	ListSocialLinks(ctx context.Context) ([]entity.SocialLink, error)
	CreateSocialLink(ctx context.Context, l *entity.SocialLink) (string, error)
	UpdateSocialLink(ctx context.Context, l *entity.SocialLink) error
	DeleteSocialLink(ctx context.Context, id string) error
	CountSocialLinks(ctx context.Context) (int64, error)
}
