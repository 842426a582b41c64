package service

import (
	"context"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type PageService interface {
	Get(ctx context.Context, slug string) (*entity.PageSEO, error)
	List(ctx context.Context) ([]entity.PageSEO, error)
	Create(ctx context.Context, p *entity.PageSEO) (*entity.PageSEO, error)
	Update(ctx context.Context, id string, p *entity.PageSEO) (*entity.PageSEO, error)
	Delete(ctx context.Context, id string) error
}

type pageService struct {
	pages repository.PageRepository
	log   logger.Logger
}

func NewPageService(pages repository.PageRepository, log logger.Logger) PageService {
	return &pageService{pages: pages, log: log}
}

func (s *pageService) Get(ctx context.Context, slug string) (*entity.PageSEO, error) {
	return s.pages.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *pageService) List(ctx context.Context) ([]entity.PageSEO, error) {
	return s.pages.List(ctx)
}

func (s *pageService) Create(ctx context.Context, p *entity.PageSEO) (*entity.PageSEO, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	id, err := s.pages.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	s.log.Infof("Page SEO created: slug=%s", p.PageSlug)
	return p, nil
}

func (s *pageService) Update(ctx context.Context, id string, p *entity.PageSEO) (*entity.PageSEO, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = id
	p.UpdatedAt = time.Now().UTC()
	if err := s.pages.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.Infof("Page SEO updated: slug=%s", p.PageSlug)
	return p, nil
}

func (s *pageService) Delete(ctx context.Context, id string) error {
	return s.pages.Delete(ctx, id)
}
