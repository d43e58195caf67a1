package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/internal/domain"
)

type AccountRepository interface {
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Deposit(ctx context.Context, accountNumber string, amount int64) error
	Withdraw(ctx context.Context, accountNumber string, amount int64) error
	Transfer(ctx context.Context, originAccountNumber string, targetAccountNumber string, amount int64) error
	Delete(ctx context.Context, accountNumber string) error
}
