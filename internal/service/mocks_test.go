package service

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, l *entity.Listing) (string, error) {
	args := m.Called(ctx, l)
	return args.String(0), args.Error(1)
}

func (m *MockListingRepository) InsertMany(ctx context.Context, ls []entity.Listing) (int, error) {
	args := m.Called(ctx, ls)
	return args.Int(0), args.Error(1)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingRepository) GetByName(ctx context.Context, name string) (*entity.Listing, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockListingRepository) FindAll(ctx context.Context) ([]entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Listing), args.Error(1)
}

func (m *MockListingRepository) Find(ctx context.Context, q repository.ListingQuery) ([]entity.Listing, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Listing), args.Error(1)
}

func (m *MockListingRepository) ExistingNames(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *MockListingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogCache struct {
	mock.Mock
}

func (m *MockCatalogCache) GetAll(ctx context.Context) ([]entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Listing), args.Error(1)
}

func (m *MockCatalogCache) SetAll(ctx context.Context, ls []entity.Listing) error {
	return m.Called(ctx, ls).Error(0)
}

func (m *MockCatalogCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockInterestRepository struct {
	mock.Mock
}

func (m *MockInterestRepository) Log(ctx context.Context, l *entity.InterestLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockInterestRepository) UniqueVisitorsSince(ctx context.Context, domainID string, since time.Time) (int64, error) {
	args := m.Called(ctx, domainID, since)
	return args.Get(0).(int64), args.Error(1)
}

type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Create(ctx context.Context, p *entity.PageSEO) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockPageRepository) Update(ctx context.Context, p *entity.PageSEO) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPageRepository) GetBySlug(ctx context.Context, slug string) (*entity.PageSEO, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PageSEO), args.Error(1)
}

func (m *MockPageRepository) List(ctx context.Context) ([]entity.PageSEO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PageSEO), args.Error(1)
}

func (m *MockPageRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead) (string, error) {
	args := m.Called(ctx, l)
	return args.String(0), args.Error(1)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Recent(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *entity.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, params repository.UpdateOrderParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ListOrdersResult), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, status entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, t *entity.TransferRequest) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*entity.TransferRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TransferRequest), args.Error(1)
}

func (m *MockTransferRepository) List(ctx context.Context, status entity.TransferStatus) ([]entity.TransferRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TransferRequest), args.Error(1)
}

func (m *MockTransferRepository) UpdateStatus(ctx context.Context, id string, status entity.TransferStatus, notes string) error {
	return m.Called(ctx, id, status, notes).Error(0)
}

func (m *MockTransferRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, status entity.MessageStatus) ([]entity.ContactMessage, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteSettings), args.Error(1)
}

func (m *MockSiteRepository) SaveSettings(ctx context.Context, s *entity.SiteSettings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSiteRepository) GetFooterContact(ctx context.Context) (*entity.FooterContact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FooterContact), args.Error(1)
}

func (m *MockSiteRepository) SaveFooterContact(ctx context.Context, c *entity.FooterContact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockSiteRepository) ListSocialLinks(ctx context.Context) ([]entity.SocialLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SocialLink), args.Error(1)
}

func (m *MockSiteRepository) CreateSocialLink(ctx context.Context, l *entity.SocialLink) (string, error) {
	args := m.Called(ctx, l)
	return args.String(0), args.Error(1)
}

func (m *MockSiteRepository) UpdateSocialLink(ctx context.Context, l *entity.SocialLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockSiteRepository) DeleteSocialLink(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSiteRepository) CountSocialLinks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Get(ctx context.Context, id string) (*entity.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *entity.Cart, ttl time.Duration) error {
	return m.Called(ctx, c, ttl).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, event interface{}) error {
	return m.Called(ctx, subject, event).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) LeadCreated(ctx context.Context, lead *entity.Lead) {
	m.Called(ctx, lead)
}

func (m *MockNotifier) TransferSubmitted(ctx context.Context, t *entity.TransferRequest) {
	m.Called(ctx, t)
}

func (m *MockNotifier) ContactReceived(ctx context.Context, msg *entity.ContactMessage) {
	m.Called(ctx, msg)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, prefix, fileName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, prefix, fileName, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to []string, subject, bodyHTML, bodyText string) error {
	return m.Called(ctx, to, subject, bodyHTML, bodyText).Error(0)
}
