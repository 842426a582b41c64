package repository

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type InterestRepository interface {
	Log(ctx context.Context, l *entity.InterestLog) error
	UniqueVisitorsSince(ctx context.Context, domainID string, since time.Time) (int64, error)
}
