package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)
	GetAll(ctx context.Context) ([]domain.Transfer, error)
}
