package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnStart(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := New(logger.NewNop(), Job{
		Name:       "sitemap",
		Spec:       "@every 1h",
		RunOnStart: true,
		Run: func(ctx context.Context) error {
			ran <- struct{}{}
			return nil
		},
	})

	require.NoError(t, s.Start(context.Background()))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(logger.NewNop(), Job{
		Name: "broken",
		Spec: "every now and then",
		Run:  func(ctx context.Context) error { return nil },
	})

	err := s.Start(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestScheduler_JobErrorIsLogged(t *testing.T) {
	done := make(chan struct{})
	s := New(logger.NewNop())

	s.run(context.Background(), Job{
		Name: "warm",
		Run: func(ctx context.Context) error {
			close(done)
			return errors.New("redis down")
		},
	})

	select {
	case <-done:
	default:
		t.Fatal("job was not invoked")
	}
}
