package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	featuredLimit  = 6
	interestWindow = 30 * 24 * time.Hour
)

// categoryTLD maps each curated collection slug to the TLD it is restricted to ("" for any).
var categoryTLD = map[string]string{
	"premium-domains-for-sale": "",
	"marketplaces":             "",
	"premium-domain-pricing":   "",
	"find-premium-domains":     "",
	"sell-premium-domains":     "",
	"premium-com-domains":      ".com",
}

var catalogTracer = otel.Tracer("storefront-service/catalog")

// Refine derives the effective criteria from the defaults computed for the current snapshot.
type Refine func(defaults catalog.Criteria) catalog.Criteria

type SearchResult struct {
	Count    int              `json:"count"`
	Summary  string           `json:"summary"`
	Criteria catalog.Criteria `json:"criteria"`
	Facets   catalog.Facets   `json:"facets"`
	Listings []entity.Listing `json:"listings"`
}

type CategoryPage struct {
	Slug     string           `json:"slug"`
	SEO      *entity.PageSEO  `json:"seo,omitempty"`
	Listings []entity.Listing `json:"listings"`
}

type Renewal struct {
	Date     time.Time `json:"date"`
	DaysLeft int       `json:"days_left"`
	Expired  bool      `json:"expired"`
}

type ListingDetail struct {
	Listing       entity.Listing `json:"listing"`
	InterestCount int64          `json:"interest_count"`
	Renewal       *Renewal       `json:"renewal,omitempty"`
}

type CatalogService interface {
	Search(ctx context.Context, search string, refine Refine) *SearchResult
	Defaults(ctx context.Context, search string) (catalog.Criteria, catalog.Facets)
	Featured(ctx context.Context) ([]entity.Listing, error)
	CategoryPage(ctx context.Context, slug string) (*CategoryPage, error)
	Detail(ctx context.Context, name string) (*ListingDetail, error)
	LogInterest(ctx context.Context, name, ip string, viewDuration int) error
	WarmCache(ctx context.Context) error
}

type catalogService struct {
	listings repository.ListingRepository
	cache    repository.CatalogCache
	interest repository.InterestRepository
	pages    repository.PageRepository
	log      logger.Logger
	now      func() time.Time
}

// NewCatalogService builds the public catalog. cache may be nil, in which case
// every query reads the repository.
func NewCatalogService(
	listings repository.ListingRepository,
	cache repository.CatalogCache,
	interest repository.InterestRepository,
	pages repository.PageRepository,
	log logger.Logger,
) CatalogService {
	return &catalogService{
		listings: listings,
		cache:    cache,
		interest: interest,
		pages:    pages,
		log:      log,
		now:      time.Now,
	}
}

func (s *catalogService) snapshot(ctx context.Context) ([]entity.Listing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAll(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.log.Warnf("Catalog cache read failed, falling back to repository: %v", err)
		}
	}

	all, err := s.listings.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetAll(ctx, all); err != nil {
			s.log.Warnf("Failed to refresh catalog cache: %v", err)
		}
	}
	return all, nil
}

// Search never fails: a snapshot error is logged and reported as zero matches.
func (s *catalogService) Search(ctx context.Context, search string, refine Refine) *SearchResult {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Search")
	defer span.End()

	all, err := s.snapshot(ctx)
	if err != nil {
		s.log.Errorf("Failed to load catalog: %v", err)
		span.RecordError(err)
		all = nil
	}

	criteria := catalog.DefaultCriteria(all, search)
	if refine != nil {
		criteria = refine(criteria)
	}
	matched := catalog.Apply(all, criteria)

	span.SetAttributes(
		attribute.Int("catalog.size", len(all)),
		attribute.Int("catalog.matches", len(matched)),
		attribute.String("catalog.sort", string(criteria.Sort)),
	)

	return &SearchResult{
		Count:    len(matched),
		Summary:  catalog.Summary(len(matched)),
		Criteria: criteria,
		Facets:   catalog.BuildFacets(all),
		Listings: matched,
	}
}

func (s *catalogService) Defaults(ctx context.Context, search string) (catalog.Criteria, catalog.Facets) {
	all, err := s.snapshot(ctx)
	if err != nil {
		s.log.Errorf("Failed to load catalog for defaults: %v", err)
	}
	return catalog.DefaultCriteria(all, search), catalog.BuildFacets(all)
}

func (s *catalogService) Featured(ctx context.Context) ([]entity.Listing, error) {
	ls, err := s.listings.Find(ctx, repository.ListingQuery{
		Status:       entity.ListingStatusAvailable,
		FeaturedOnly: true,
		SortBy:       "created_at",
		SortDesc:     true,
		Limit:        featuredLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load featured listings: %w", err)
	}
	return ls, nil
}

func (s *catalogService) CategoryPage(ctx context.Context, slug string) (*CategoryPage, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	tld, ok := categoryTLD[slug]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", slug, repository.ErrNotFound)
	}

	ls, err := s.listings.Find(ctx, repository.ListingQuery{
		Status:   entity.ListingStatusAvailable,
		TLD:      tld,
		SortBy:   "price",
		SortDesc: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", slug, err)
	}

	page := &CategoryPage{Slug: slug, Listings: ls}
	seo, err := s.pages.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		page.SEO = seo
	case !errors.Is(err, repository.ErrNotFound):
		s.log.Warnf("Failed to load SEO for category %s: %v", slug, err)
	}
	return page, nil
}

func (s *catalogService) Detail(ctx context.Context, name string) (*ListingDetail, error) {
	l, err := s.listings.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{Listing: *l}
	now := s.now()

	count, err := s.interest.UniqueVisitorsSince(ctx, l.ID, now.Add(-interestWindow))
	if err != nil {
		s.log.Warnf("Failed to count interest for %s: %v", l.Name, err)
	} else {
		detail.InterestCount = count
	}

	if date, ok := l.RenewalDate(); ok {
		detail.Renewal = renewalFrom(date, now)
	}
	return detail, nil
}

func renewalFrom(date, now time.Time) *Renewal {
	days := int(math.Ceil(date.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return &Renewal{Date: date, DaysLeft: days, Expired: !now.Before(date)}
}

func (s *catalogService) LogInterest(ctx context.Context, name, ip string, viewDuration int) error {
	l, err := s.listings.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if viewDuration < 0 {
		viewDuration = 0
	}
	return s.interest.Log(ctx, &entity.InterestLog{
		DomainID:     l.ID,
		IPAddress:    ip,
		ViewDuration: viewDuration,
		CreatedAt:    s.now().UTC(),
	})
}

func (s *catalogService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	all, err := s.listings.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load listings for cache warm-up: %w", err)
	}
	if err := s.cache.SetAll(ctx, all); err != nil {
		return fmt.Errorf("failed to store catalog snapshot: %w", err)
	}
	s.log.Debugf("Catalog cache warmed with %d listings", len(all))
	return nil
}
