package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/internal/commons"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	ListTransfers(ctx context.Context) (commons.Response[[]models.TransferEntryResponse], error)
}
