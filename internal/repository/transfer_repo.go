package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type TransferRepository interface {
	Create(ctx context.Context, t *entity.TransferRequest) (string, error)
	GetByID(ctx context.Context, id string) (*entity.TransferRequest, error)
	List(ctx context.Context, status entity.TransferStatus) ([]entity.TransferRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.TransferStatus, notes string) error
	Delete(ctx context.Context, id string) error
}
