package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type SiteService interface {
	Settings(ctx context.Context) (*entity.SiteSettings, error)
	SaveSettings(ctx context.Context, s *entity.SiteSettings) (*entity.SiteSettings, error)
	FooterContact(ctx context.Context) (*entity.FooterContact, error)
	SaveFooterContact(ctx context.Context, c *entity.FooterContact) (*entity.FooterContact, error)
	SocialLinks(ctx context.Context) ([]entity.SocialLink, error)
	CreateSocialLink(ctx context.Context, l *entity.SocialLink) (*entity.SocialLink, error)
	UpdateSocialLink(ctx context.Context, id string, l *entity.SocialLink) (*entity.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id string) error
	Footer(ctx context.Context) (*entity.SiteFooter, error)
}

type siteService struct {
	repo repository.SiteRepository
	log  logger.Logger
}

func NewSiteService(repo repository.SiteRepository, log logger.Logger) SiteService {
	return &siteService{repo: repo, log: log}
}

// Settings returns empty settings when none have been saved yet.
func (s *siteService) Settings(ctx context.Context) (*entity.SiteSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &entity.SiteSettings{}, nil
	}
	return settings, err
}

func (s *siteService) SaveSettings(ctx context.Context, in *entity.SiteSettings) (*entity.SiteSettings, error) {
	in.SiteName = strings.TrimSpace(in.SiteName)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.SupportPhone = strings.TrimSpace(in.SupportPhone)
	if in.ContactEmail != "" && !entity.IsValidEmail(in.ContactEmail) {
		return nil, entity.NewValidationError("contact email is not a valid address")
	}
	in.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveSettings(ctx, in); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Info("Global settings updated")
	return in, nil
}

func (s *siteService) FooterContact(ctx context.Context) (*entity.FooterContact, error) {
	return s.repo.GetFooterContact(ctx)
}

func (s *siteService) SaveFooterContact(ctx context.Context, c *entity.FooterContact) (*entity.FooterContact, error) {
	c.HeadingText = strings.TrimSpace(c.HeadingText)
	c.Email = strings.TrimSpace(c.Email)
	if !entity.IsValidEmail(c.Email) {
		return nil, entity.NewValidationError("a valid footer email is required")
	}
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveFooterContact(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save footer contact: %w", err)
	}
	return c, nil
}

// SocialLinks are returned in display order.
func (s *siteService) SocialLinks(ctx context.Context) ([]entity.SocialLink, error) {
	links, err := s.repo.ListSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].Order < links[j].Order })
	return links, nil
}

func (s *siteService) CreateSocialLink(ctx context.Context, l *entity.SocialLink) (*entity.SocialLink, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.CreatedAt = time.Now().UTC()
	id, err := s.repo.CreateSocialLink(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return l, nil
}

func (s *siteService) UpdateSocialLink(ctx context.Context, id string, l *entity.SocialLink) (*entity.SocialLink, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.ID = id
	if err := s.repo.UpdateSocialLink(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *siteService) DeleteSocialLink(ctx context.Context, id string) error {
	return s.repo.DeleteSocialLink(ctx, id)
}

// Footer assembles the public footer; a missing contact block is left nil.
func (s *siteService) Footer(ctx context.Context) (*entity.SiteFooter, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	footer := &entity.SiteFooter{Settings: *settings}

	contact, err := s.repo.GetFooterContact(ctx)
	switch {
	case err == nil:
		footer.Contact = contact
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if footer.Social, err = s.SocialLinks(ctx); err != nil {
		return nil, err
	}
	return footer, nil
}
