package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-ledger/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/internal/commons"
)

type LedgerService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error)
	GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) (commons.Response[models.DeleteAccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error)
}
