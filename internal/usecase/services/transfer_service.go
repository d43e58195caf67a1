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
	"github.com/google/uuid"
)

type TransferService struct {
	accountRepo  repo_interfaces.AccountRepository
	transferRepo repo_interfaces.TransferRepository
}

func NewTransferService(
	accountRepo repo_interfaces.AccountRepository,
	transferRepo repo_interfaces.TransferRepository,
) *TransferService {
	return &TransferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

// Transfer moves funds between two accounts after authenticating against the
// origin's PIN. Both legs settle in one transaction at the store; a transfer
// either moves the full amount or moves nothing.
func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer validation failed", err, nil)
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	originNumber := strings.TrimSpace(req.OriginAccountNumber)
	targetNumber := strings.TrimSpace(req.TargetAccountNumber)

	if originNumber == targetNumber {
		logger.Info("transfer service same account rejected", logger.Fields{
			"accountNumber": originNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("Origin and target accounts are the same"), domain.ErrSameAccount
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("Invalid amount", err.Error()), err
	}

	origin, err := s.accountRepo.GetByAccountNumber(ctx, originNumber)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Origin account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if _, err := s.accountRepo.GetByAccountNumber(ctx, targetNumber); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Target account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	if !origin.VerifyPIN(strings.TrimSpace(req.PIN)) {
		logger.Info("transfer service wrong pin", logger.Fields{
			"originAccountNumber": originNumber,
		})
		return commons.ErrorResponse[models.TransferResponse]("Wrong PIN"), domain.ErrWrongPIN
	}

	if err := s.accountRepo.Transfer(ctx, originNumber, targetNumber, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferResponse]("Insufficient funds"), err
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to process transfer right now"), err
	}

	s.journal(ctx, originNumber, targetNumber, amount)

	updatedOrigin, err := s.accountRepo.GetByAccountNumber(ctx, originNumber)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to fetch accounts right now"), err
	}
	updatedTarget, err := s.accountRepo.GetByAccountNumber(ctx, targetNumber)
	if err != nil {
		return commons.ErrorResponse[models.TransferResponse]("failed to process transfer", "Unable to fetch accounts right now"), err
	}

	logger.Info("transfer service transfer success", logger.Fields{
		"originAccountNumber": originNumber,
		"targetAccountNumber": targetNumber,
		"amount":              amount,
	})

	response := models.TransferResponse{
		Origin: toAccountResponse(updatedOrigin),
		Target: toAccountResponse(updatedTarget),
	}

	return commons.SuccessResponse("transfer completed successfully", response), nil
}

// journal records the movement for audit. The funds have already settled, so
// a journal failure is logged rather than surfaced to the caller.
func (s *TransferService) journal(ctx context.Context, originNumber, targetNumber string, amount int64) {
	entry := domain.Transfer{
		ID:                  uuid.NewString(),
		OriginAccountNumber: originNumber,
		TargetAccountNumber: targetNumber,
		Amount:              amount,
		Status:              domain.TransferStatusSuccess,
	}

	if _, err := s.transferRepo.Create(ctx, entry); err != nil {
		logger.Error("transfer service journal write failed", err, logger.Fields{
			"transferId":          entry.ID,
			"originAccountNumber": originNumber,
			"targetAccountNumber": targetNumber,
		})
	}
}

func (s *TransferService) ListTransfers(ctx context.Context) (commons.Response[[]models.TransferEntryResponse], error) {
	transfers, err := s.transferRepo.GetAll(ctx)
	if err != nil {
		logger.Error("transfer service list transfers failed", err, nil)
		return commons.ErrorResponse[[]models.TransferEntryResponse]("failed to list transfers", "Unable to list transfers right now"), err
	}

	response := make([]models.TransferEntryResponse, 0, len(transfers))
	for _, transfer := range transfers {
		response = append(response, models.TransferEntryResponse{
			ID:                  transfer.ID,
			OriginAccountNumber: transfer.OriginAccountNumber,
			TargetAccountNumber: transfer.TargetAccountNumber,
			Amount:              transfer.Amount,
			Status:              string(transfer.Status),
			CreatedAt:           transfer.CreatedAt.Format(time.RFC3339),
		})
	}

	return commons.SuccessResponse("transfers fetched successfully", response), nil
}
