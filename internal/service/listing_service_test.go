package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	var in struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1500, "b": "2500.5", "c": "abc", "d": null}`), &in))
	assert.Equal(t, Amount(1500), in.A)
	assert.Equal(t, Amount(2500.5), in.B)
	assert.Equal(t, Amount(0), in.C)
	assert.Equal(t, Amount(0), in.D)
}

func TestParseImportLines(t *testing.T) {
	text := "Example.COM, 1500, Tech\r\nnodot\n\n  brand.io\nbad.net, abc\n"
	got := ParseImportLines(text)

	require.Len(t, got, 3)
	assert.Equal(t, "example.com", got[0].Name)
	assert.Equal(t, ".com", got[0].TLD)
	assert.Equal(t, 1500.0, got[0].Price)
	assert.Equal(t, "Tech", got[0].Category)
	assert.Equal(t, entity.ListingStatusAvailable, got[0].Status)

	assert.Equal(t, "brand.io", got[1].Name)
	assert.Equal(t, entity.DefaultCategory, got[1].Category)
	assert.Equal(t, 0.0, got[1].Price)

	assert.Equal(t, "bad.net", got[2].Name)
	assert.Equal(t, 0.0, got[2].Price)
}

func TestListingService_BulkImport_DedupesAndChunks(t *testing.T) {
	repo := new(MockListingRepository)
	cache := new(MockCatalogCache)
	pub := new(MockPublisher)
	svc := NewListingService(repo, cache, pub, logger.NewNop())
	ctx := context.Background()

	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, "name%d.com,%d\n", i, i*10)
	}
	b.WriteString("taken.com\nname1.com\n")

	repo.On("ExistingNames", ctx).Return(map[string]struct{}{"taken.com": {}}, nil).Once()
	repo.On("InsertMany", ctx, mock.MatchedBy(func(ls []entity.Listing) bool { return len(ls) == 50 })).Return(50, nil).Once()
	repo.On("InsertMany", ctx, mock.MatchedBy(func(ls []entity.Listing) bool { return len(ls) == 10 })).Return(10, nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Once()
	pub.On("Publish", ctx, SubjectListingChanged, mock.MatchedBy(func(ev ListingChangedEvent) bool {
		return ev.Action == "imported" && ev.Count == 60
	})).Return(nil).Once()

	res, err := svc.BulkImport(ctx, b.String())
	require.NoError(t, err)
	assert.Equal(t, 60, res.Added)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []string{"taken.com", "name1.com"}, res.SkippedNames)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestListingService_BulkImport_NothingValid(t *testing.T) {
	repo := new(MockListingRepository)
	svc := NewListingService(repo, nil, nil, logger.NewNop())

	_, err := svc.BulkImport(context.Background(), "nodot\n   \n")
	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.ErrorIs(t, err, ErrNothingToImport)
	repo.AssertNotCalled(t, "ExistingNames", mock.Anything)
}

func TestListingService_BulkImport_InsertFailureReportsPartialResult(t *testing.T) {
	repo := new(MockListingRepository)
	svc := NewListingService(repo, nil, nil, logger.NewNop())
	ctx := context.Background()

	repo.On("ExistingNames", ctx).Return(map[string]struct{}{}, nil).Once()
	repo.On("InsertMany", ctx, mock.Anything).Return(0, errors.New("write failed")).Once()

	res, err := svc.BulkImport(ctx, "a.com\nb.com")
	require.Error(t, err)
	assert.Equal(t, 0, res.Added)
}

func TestListingService_Create(t *testing.T) {
	repo := new(MockListingRepository)
	cache := new(MockCatalogCache)
	pub := new(MockPublisher)
	svc := NewListingService(repo, cache, pub, logger.NewNop())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.Name == "brand.co.uk" && l.TLD == ".uk" && l.Featured &&
			len(l.UseCases) == 2 && l.RegistrationDate != nil && l.Status == entity.ListingStatusNegotiation
	})).Return("abc", nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Once()
	pub.On("Publish", ctx, SubjectListingChanged, mock.Anything).Return(nil).Once()

	l, err := svc.Create(ctx, ListingInput{
		Name:             " Brand.co.uk ",
		Price:            4200,
		Status:           "negotiation",
		Featured:         true,
		RegistrationDate: "2023-05-01",
		UseCases:         "Retail, , Fashion",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", l.ID)
	assert.Equal(t, []string{"Retail", "Fashion"}, l.UseCases)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestListingService_Create_Validation(t *testing.T) {
	svc := NewListingService(new(MockListingRepository), nil, nil, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, ListingInput{Name: "  "})
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = svc.Create(ctx, ListingInput{Name: "x.com", Status: "reserved"})
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)

	_, err = svc.Create(ctx, ListingInput{Name: "x.com", RegistrationDate: "01/02/2023"})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestListingService_Update_KeepsStatusWhenBlank(t *testing.T) {
	repo := new(MockListingRepository)
	svc := NewListingService(repo, nil, nil, logger.NewNop())
	ctx := context.Background()

	existing := &entity.Listing{ID: "1", Name: "old.com", Status: entity.ListingStatusSold}
	repo.On("GetByID", ctx, "1").Return(existing, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.ID == "1" && l.Name == "new.net" && l.TLD == ".net" && l.Status == entity.ListingStatusSold
	})).Return(nil).Once()

	l, err := svc.Update(ctx, "1", ListingInput{Name: "new.net", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, l.Price)
	repo.AssertExpectations(t)
}
