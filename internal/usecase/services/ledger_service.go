package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bank-ledger/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-ledger/internal/commons"
	"github.com/api-sage/bank-ledger/internal/domain"
	"github.com/api-sage/bank-ledger/internal/logger"
)

// AccountNumberGenerator mints externally visible account numbers. The
// service treats the output as an opaque unique string.
type AccountNumberGenerator interface {
	Generate() (string, error)
}

// PINGenerator produces the 6-digit credential stored on a new account.
type PINGenerator interface {
	Generate() (string, error)
}

// Freshly minted account numbers collide only when the random body repeats;
// a couple of retries against the unique constraint is plenty.
const maxAccountNumberAttempts = 3

type LedgerService struct {
	accountRepo repo_interfaces.AccountRepository
	numberGen   AccountNumberGenerator
	pinGen      PINGenerator
}

func NewLedgerService(
	accountRepo repo_interfaces.AccountRepository,
	numberGen AccountNumberGenerator,
	pinGen PINGenerator,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		numberGen:   numberGen,
		pinGen:      pinGen,
	}
}

// CreateAccount opens a new account and returns it together with its PIN.
// This response is the caller's only chance to learn the PIN; no other
// operation ever discloses it.
func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("ledger service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create account validation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	var balance int64
	if strings.TrimSpace(req.InitialDeposit) != "" {
		parsed, err := domain.ParseAmount(req.InitialDeposit)
		if err != nil {
			return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
		}
		balance = parsed
	}

	var created domain.Account
	var err error
	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		created, err = s.createOnce(ctx, balance)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateAccountNumber) {
			break
		}
		logger.Info("ledger service account number collision, retrying", logger.Fields{
			"attempt": attempt,
		})
	}
	if err != nil {
		logger.Error("ledger service create account failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := models.CreateAccountResponse{
		ID:            created.ID,
		AccountNumber: created.AccountNumber,
		PIN:           created.PIN,
		Balance:       created.Balance,
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("ledger service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *LedgerService) createOnce(ctx context.Context, balance int64) (domain.Account, error) {
	accountNumber, err := s.numberGen.Generate()
	if err != nil {
		return domain.Account{}, err
	}

	pin, err := s.pinGen.Generate()
	if err != nil {
		return domain.Account{}, err
	}

	id, err := s.accountRepo.NextID(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	return s.accountRepo.Create(ctx, domain.Account{
		ID:            id,
		AccountNumber: accountNumber,
		PIN:           pin,
		Balance:       balance,
	})
}

func (s *LedgerService) GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error) {
	logger.Info("ledger service get balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("failed to get balance", "Unable to fetch balance right now"), err
	}

	response := models.BalanceResponse{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *LedgerService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Invalid amount", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	if !account.VerifyPIN(strings.TrimSpace(req.PIN)) {
		logger.Info("ledger service deposit wrong pin", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("Wrong PIN"), domain.ErrWrongPIN
	}

	if err := s.accountRepo.Deposit(ctx, accountNumber, amount); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	updated, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("failed to deposit funds", "Unable to fetch account right now"), err
	}

	logger.Info("ledger service deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
		"balance":       updated.Balance,
	})

	return commons.SuccessResponse("deposit completed successfully", toAccountResponse(updated)), nil
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Invalid amount", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	if !account.VerifyPIN(strings.TrimSpace(req.PIN)) {
		logger.Info("ledger service withdraw wrong pin", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("Wrong PIN"), domain.ErrWrongPIN
	}

	if err := s.accountRepo.Withdraw(ctx, accountNumber, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.AccountResponse]("Insufficient funds"), err
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	updated, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("failed to withdraw funds", "Unable to fetch account right now"), err
	}

	logger.Info("ledger service withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
		"balance":       updated.Balance,
	})

	return commons.SuccessResponse("withdrawal completed successfully", toAccountResponse(updated)), nil
}

func (s *LedgerService) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) (commons.Response[models.DeleteAccountResponse], error) {
	logger.Info("ledger service delete account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service delete account validation failed", err, nil)
		return commons.ErrorResponse[models.DeleteAccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.DeleteAccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.DeleteAccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}

	if !account.VerifyPIN(strings.TrimSpace(req.PIN)) {
		logger.Info("ledger service delete account wrong pin", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.DeleteAccountResponse]("Wrong PIN"), domain.ErrWrongPIN
	}

	if err := s.accountRepo.Delete(ctx, accountNumber); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.DeleteAccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.DeleteAccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}

	logger.Info("ledger service delete account success", logger.Fields{
		"accountNumber": accountNumber,
	})

	response := models.DeleteAccountResponse{AccountNumber: accountNumber}
	return commons.SuccessResponse("account deleted successfully", response), nil
}

func (s *LedgerService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("ledger service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to list accounts right now"), err
	}

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toAccountResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}
