package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/bank-ledger/internal/domain"
	"github.com/api-sage/bank-ledger/internal/logger"
)

// TransferRepository persists the transfer journal. Journal rows are an
// audit trail only; account balances are settled by AccountRepository.
type TransferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	const query = `
INSERT INTO transfers (id, origin_account_number, target_account_number, amount, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

	var createdAt time.Time
	if err := r.db.QueryRowContext(
		ctx,
		query,
		transfer.ID,
		transfer.OriginAccountNumber,
		transfer.TargetAccountNumber,
		transfer.Amount,
		transfer.Status,
	).Scan(&createdAt); err != nil {
		logger.Error("transfer repository create failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, fmt.Errorf("create transfer journal entry: %w", err)
	}

	transfer.CreatedAt = createdAt

	logger.Info("transfer repository create success", logger.Fields{
		"transferId":          transfer.ID,
		"originAccountNumber": transfer.OriginAccountNumber,
		"targetAccountNumber": transfer.TargetAccountNumber,
		"status":              transfer.Status,
	})

	return transfer, nil
}

func (r *TransferRepository) GetAll(ctx context.Context) ([]domain.Transfer, error) {
	const query = `
SELECT id, origin_account_number, target_account_number, amount, status, created_at
FROM transfers
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("transfer repository get all failed", err, nil)
		return nil, fmt.Errorf("get all transfers: %w", err)
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		var transfer domain.Transfer
		if err := rows.Scan(
			&transfer.ID,
			&transfer.OriginAccountNumber,
			&transfer.TargetAccountNumber,
			&transfer.Amount,
			&transfer.Status,
			&transfer.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}

	return transfers, nil
}
