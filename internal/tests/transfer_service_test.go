package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/bank-ledger/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/internal/domain"
	"github.com/api-sage/bank-ledger/internal/usecase/services"
)

func newTransferFixture(t *testing.T, originBalance, targetBalance string) (*services.TransferService, *fakeAccountRepository, *fakeTransferRepository, string, string) {
	t.Helper()

	ledger, accountRepo := newLedgerService("4000001111111111", "4000002222222222")
	origin := createAccount(t, ledger, originBalance)
	target := createAccount(t, ledger, targetBalance)

	transferRepo := &fakeTransferRepository{}
	svc := services.NewTransferService(accountRepo, transferRepo)
	return svc, accountRepo, transferRepo, origin.AccountNumber, target.AccountNumber
}

func TestTransferMovesFullAmount(t *testing.T) {
	svc, repo, _, origin, target := newTransferFixture(t, "10000", "0")

	response, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: target,
		PIN:                 testPIN,
		Amount:              "10000",
	})
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if response.Data.Origin.Balance != 0 {
		t.Fatalf("origin balance = %d, want 0", response.Data.Origin.Balance)
	}
	if response.Data.Target.Balance != 10000 {
		t.Fatalf("target balance = %d, want 10000", response.Data.Target.Balance)
	}

	total := balanceOf(t, repo, origin) + balanceOf(t, repo, target)
	if total != 10000 {
		t.Fatalf("total balance = %d, transfer must conserve funds", total)
	}
}

func TestTransferSameAccountRejected(t *testing.T) {
	svc, repo, _, origin, _ := newTransferFixture(t, "100", "0")

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: origin,
		PIN:                 testPIN,
		Amount:              "10",
	})
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("err = %v, want ErrSameAccount", err)
	}
	if got := balanceOf(t, repo, origin); got != 100 {
		t.Fatalf("balance = %d, want unchanged 100", got)
	}
}

func TestTransferInsufficientFundsFailsExplicitly(t *testing.T) {
	svc, repo, journal, origin, target := newTransferFixture(t, "50", "0")

	response, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: target,
		PIN:                 testPIN,
		Amount:              "100",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if response.Success {
		t.Fatal("a short transfer must never report success")
	}

	if got := balanceOf(t, repo, origin); got != 50 {
		t.Fatalf("origin balance = %d, want unchanged 50", got)
	}
	if got := balanceOf(t, repo, target); got != 0 {
		t.Fatalf("target balance = %d, want unchanged 0", got)
	}

	entries, _ := journal.GetAll(context.Background())
	if len(entries) != 0 {
		t.Fatalf("failed transfer must not be journaled, got %d entries", len(entries))
	}
}

func TestTransferWrongPIN(t *testing.T) {
	svc, repo, _, origin, target := newTransferFixture(t, "100", "20")

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: target,
		PIN:                 "999999",
		Amount:              "10",
	})
	if !errors.Is(err, domain.ErrWrongPIN) {
		t.Fatalf("err = %v, want ErrWrongPIN", err)
	}
	if balanceOf(t, repo, origin) != 100 || balanceOf(t, repo, target) != 20 {
		t.Fatal("wrong pin must leave both balances untouched")
	}
}

func TestTransferUnknownTarget(t *testing.T) {
	svc, repo, _, origin, _ := newTransferFixture(t, "100", "0")

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: "4000009999999999",
		PIN:                 testPIN,
		Amount:              "10",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
	if got := balanceOf(t, repo, origin); got != 100 {
		t.Fatalf("origin balance = %d, want unchanged 100", got)
	}
}

func TestTransferInvalidAmount(t *testing.T) {
	svc, repo, _, origin, target := newTransferFixture(t, "100", "0")

	for _, amount := range []string{"-10", "3.14", "lots"} {
		_, err := svc.Transfer(context.Background(), models.TransferRequest{
			OriginAccountNumber: origin,
			TargetAccountNumber: target,
			PIN:                 testPIN,
			Amount:              amount,
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %q: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if balanceOf(t, repo, origin) != 100 || balanceOf(t, repo, target) != 0 {
		t.Fatal("invalid amounts must leave balances untouched")
	}
}

func TestTransferJournalsSuccess(t *testing.T) {
	svc, _, journal, origin, target := newTransferFixture(t, "100", "0")

	if _, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: target,
		PIN:                 testPIN,
		Amount:              "30",
	}); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	entries, err := journal.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.OriginAccountNumber != origin || entry.TargetAccountNumber != target || entry.Amount != 30 {
		t.Fatalf("journal entry %+v does not match the movement", entry)
	}
	if entry.Status != domain.TransferStatusSuccess {
		t.Fatalf("journal status = %q, want SUCCESS", entry.Status)
	}
	if entry.ID == "" {
		t.Fatal("journal entry should carry an id")
	}

	listed, err := svc.ListTransfers(context.Background())
	if err != nil {
		t.Fatalf("ListTransfers: %v", err)
	}
	if len(*listed.Data) != 1 {
		t.Fatalf("listed transfers = %d, want 1", len(*listed.Data))
	}
}

func TestTransferSucceedsWhenJournalUnavailable(t *testing.T) {
	svc, repo, journal, origin, target := newTransferFixture(t, "100", "0")
	journal.failCreate = true

	if _, err := svc.Transfer(context.Background(), models.TransferRequest{
		OriginAccountNumber: origin,
		TargetAccountNumber: target,
		PIN:                 testPIN,
		Amount:              "30",
	}); err != nil {
		t.Fatalf("Transfer should not fail on journal errors: %v", err)
	}
	if balanceOf(t, repo, origin) != 70 || balanceOf(t, repo, target) != 30 {
		t.Fatal("funds should have moved despite the journal failure")
	}
}
