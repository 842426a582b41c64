//go:build integration

package mongo

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testDB *mongo.Database

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "6.0",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start MongoDB resource: %s", err)
	}
	uri := fmt.Sprintf("mongodb://%s", resource.GetHostPort("27017/tcp"))

	var client *mongo.Client
	if err := pool.Retry(func() error {
		var errRetry error
		client, errRetry = mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
		if errRetry != nil {
			return errRetry
		}
		return client.Ping(context.Background(), nil)
	}); err != nil {
		log.Fatalf("Could not connect to MongoDB: %s", err)
	}

	testDB = client.Database("storefront_test")
	if err := EnsureIndexes(context.Background(), testDB); err != nil {
		log.Fatalf("Could not create indexes: %s", err)
	}

	code := m.Run()

	_ = client.Disconnect(context.Background())
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge MongoDB resource: %s", err)
	}
	os.Exit(code)
}

func cleanListings(t *testing.T) {
	t.Helper()
	_, err := testDB.Collection(listingsCollection).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err)
}

func TestListingRepository_CRUD(t *testing.T) {
	cleanListings(t)
	ctx := context.Background()
	repo := NewListingRepository(testDB)

	l, err := entity.NewListing("Example.com", 2500, "Business")
	require.NoError(t, err)

	id, err := repo.Create(ctx, l)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = repo.Create(ctx, l)
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	got, err := repo.GetByName(ctx, "EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, ".com", got.TLD)

	got.Price = 3000
	got.Featured = true
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(3000), reloaded.Price)
	assert.True(t, reloaded.Featured)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}

func TestListingRepository_NonNumericPriceDecodesAsZero(t *testing.T) {
	cleanListings(t)
	ctx := context.Background()
	_, err := testDB.Collection(listingsCollection).InsertOne(ctx, bson.M{
		"name":       "odd.io",
		"tld":        ".io",
		"price":      "ask me",
		"status":     "available",
		"created_at": time.Now().UTC(),
	})
	require.NoError(t, err)

	all, err := NewListingRepository(testDB).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, float64(0), all[0].Price)
}

func TestListingRepository_FindAndNames(t *testing.T) {
	cleanListings(t)
	ctx := context.Background()
	repo := NewListingRepository(testDB)

	var batch []entity.Listing
	for i, spec := range []struct {
		name   string
		price  float64
		status entity.ListingStatus
	}{
		{"alpha.com", 100, entity.ListingStatusAvailable},
		{"beta.io", 900, entity.ListingStatusAvailable},
		{"gamma.com", 500, entity.ListingStatusSold},
		{"delta.com", 700, entity.ListingStatusAvailable},
	} {
		l, err := entity.NewListing(spec.name, spec.price, "")
		require.NoError(t, err)
		l.Status = spec.status
		l.CreatedAt = l.CreatedAt.Add(time.Duration(i) * time.Minute)
		batch = append(batch, *l)
	}
	n, err := repo.InsertMany(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	available, err := repo.Find(ctx, repository.ListingQuery{
		Status:   entity.ListingStatusAvailable,
		TLD:      "com",
		SortBy:   "price",
		SortDesc: true,
	})
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "delta.com", available[0].Name)
	assert.Equal(t, "alpha.com", available[1].Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "delta.com", all[0].Name)

	names, err := repo.ExistingNames(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 4)
	assert.Contains(t, names, "beta.io")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
