package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []entity.Listing {
	now := time.Now().UTC()
	return []entity.Listing{
		{ID: "1", Name: "ai.com", TLD: ".com", Category: "Tech", Price: 50000, Status: entity.ListingStatusAvailable, CreatedAt: now},
		{ID: "2", Name: "shop.io", TLD: ".io", Category: "Retail", Price: 3000, Status: entity.ListingStatusAvailable, CreatedAt: now.Add(-time.Hour)},
		{ID: "3", Name: "travel.net", TLD: ".net", Category: "Travel", Price: 900, Status: entity.ListingStatusSold, CreatedAt: now.Add(-2 * time.Hour)},
	}
}

type catalogMocks struct {
	listings *MockListingRepository
	cache    *MockCatalogCache
	interest *MockInterestRepository
	pages    *MockPageRepository
}

func newCatalogServiceForTest() (*catalogService, catalogMocks) {
	m := catalogMocks{
		listings: new(MockListingRepository),
		cache:    new(MockCatalogCache),
		interest: new(MockInterestRepository),
		pages:    new(MockPageRepository),
	}
	svc := NewCatalogService(m.listings, m.cache, m.interest, m.pages, logger.NewNop()).(*catalogService)
	return svc, m
}

func TestCatalogService_Search_UsesCacheAndRefine(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()

	m.cache.On("GetAll", mock.Anything).Return(catalogFixture(), nil).Once()

	res := svc.Search(ctx, "", func(d catalog.Criteria) catalog.Criteria {
		return d.WithTLDs(catalog.RestrictedToTLDs(".com", ".io")).WithSort(catalog.SortPriceAsc)
	})

	require.NotNil(t, res)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "shop.io", res.Listings[0].Name)
	assert.Equal(t, "ai.com", res.Listings[1].Name)
	assert.Equal(t, "Found 2 premium assets matching your criteria", res.Summary)
	assert.Equal(t, []string{".com", ".io", ".net"}, res.Facets.TLDs)
	assert.Equal(t, float64(catalog.DefaultPriceCeiling), res.Criteria.Price.Max)
	m.cache.AssertExpectations(t)
	m.listings.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestCatalogService_Search_CacheMissLoadsRepository(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()
	all := catalogFixture()

	m.cache.On("GetAll", mock.Anything).Return(nil, repository.ErrCacheMiss).Once()
	m.listings.On("FindAll", mock.Anything).Return(all, nil).Once()
	m.cache.On("SetAll", mock.Anything, all).Return(nil).Once()

	res := svc.Search(ctx, "SHOP", nil)

	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "SHOP", res.Criteria.Query)
	assert.Equal(t, "shop.io", res.Listings[0].Name)
	m.cache.AssertExpectations(t)
	m.listings.AssertExpectations(t)
}

func TestCatalogService_Search_FetchErrorYieldsZeroResults(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()

	m.cache.On("GetAll", mock.Anything).Return(nil, errors.New("redis down")).Once()
	m.listings.On("FindAll", mock.Anything).Return(nil, errors.New("mongo down")).Once()

	res := svc.Search(ctx, "", nil)

	require.NotNil(t, res)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Listings)
	assert.Empty(t, res.Listings)
	assert.Equal(t, "Found 0 premium assets matching your criteria", res.Summary)
	m.cache.AssertNotCalled(t, "SetAll", mock.Anything, mock.Anything)
}

func TestCatalogService_Featured(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()
	want := repository.ListingQuery{
		Status:       entity.ListingStatusAvailable,
		FeaturedOnly: true,
		SortBy:       "created_at",
		SortDesc:     true,
		Limit:        6,
	}
	m.listings.On("Find", ctx, want).Return(catalogFixture()[:1], nil).Once()

	got, err := svc.Featured(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	m.listings.AssertExpectations(t)
}

func TestCatalogService_CategoryPage(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()

	m.listings.On("Find", ctx, repository.ListingQuery{
		Status:   entity.ListingStatusAvailable,
		TLD:      ".com",
		SortBy:   "price",
		SortDesc: true,
	}).Return(catalogFixture()[:1], nil).Once()
	m.pages.On("GetBySlug", ctx, "premium-com-domains").Return(nil, repository.ErrNotFound).Once()

	page, err := svc.CategoryPage(ctx, "Premium-COM-Domains")
	require.NoError(t, err)
	assert.Equal(t, "premium-com-domains", page.Slug)
	assert.Nil(t, page.SEO)
	assert.Len(t, page.Listings, 1)

	_, err = svc.CategoryPage(ctx, "cheap-domains")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	m.listings.AssertExpectations(t)
	m.pages.AssertExpectations(t)
}

func TestCatalogService_Detail(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	reg := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	l := &entity.Listing{ID: "1", Name: "ai.com", RegistrationDate: &reg}
	m.listings.On("GetByName", ctx, "ai.com").Return(l, nil).Once()
	m.interest.On("UniqueVisitorsSince", ctx, "1", now.Add(-30*24*time.Hour)).Return(int64(7), nil).Once()

	d, err := svc.Detail(ctx, "ai.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), d.InterestCount)
	require.NotNil(t, d.Renewal)
	assert.Equal(t, 10, d.Renewal.DaysLeft)
	assert.False(t, d.Renewal.Expired)
	m.interest.AssertExpectations(t)
}

func TestRenewalFrom_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	r := renewalFrom(now.AddDate(0, 0, -3), now)
	assert.True(t, r.Expired)
	assert.Equal(t, 0, r.DaysLeft)
}

func TestCatalogService_LogInterest(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()

	m.listings.On("GetByName", ctx, "ai.com").Return(&entity.Listing{ID: "1", Name: "ai.com"}, nil).Once()
	m.interest.On("Log", ctx, mock.MatchedBy(func(l *entity.InterestLog) bool {
		return l.DomainID == "1" && l.IPAddress == "10.0.0.1" && l.ViewDuration == 0
	})).Return(nil).Once()

	require.NoError(t, svc.LogInterest(ctx, "ai.com", "10.0.0.1", -5))

	m.listings.On("GetByName", ctx, "nope.com").Return(nil, repository.ErrNotFound).Once()
	assert.ErrorIs(t, svc.LogInterest(ctx, "nope.com", "10.0.0.1", 3), repository.ErrNotFound)
	m.interest.AssertExpectations(t)
}

func TestCatalogService_WarmCache(t *testing.T) {
	svc, m := newCatalogServiceForTest()
	ctx := context.Background()
	all := catalogFixture()

	m.listings.On("FindAll", ctx).Return(all, nil).Once()
	m.cache.On("SetAll", ctx, all).Return(nil).Once()

	require.NoError(t, svc.WarmCache(ctx))
	m.cache.AssertExpectations(t)
}
