package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/api-sage/bank-ledger/internal/domain"
)

// fakeAccountRepository mirrors the store-side semantics the postgres
// repository relies on: relative balance adjustments, the balance guard on
// debits, and a monotonic identifier sequence that never re-issues a value.
type fakeAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	lastID   int64

	failNextID bool
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: map[string]domain.Account{}}
}

func (f *fakeAccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[accountNumber]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		out = append(out, account)
	}
	return out, nil
}

func (f *fakeAccountRepository) NextID(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNextID {
		return 0, fmt.Errorf("sequence unavailable")
	}

	f.lastID++
	return f.lastID, nil
}

func (f *fakeAccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.accounts[account.AccountNumber]; exists {
		return domain.Account{}, domain.ErrDuplicateAccountNumber
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	f.accounts[account.AccountNumber] = account
	return account, nil
}

func (f *fakeAccountRepository) Deposit(_ context.Context, accountNumber string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[accountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}

	account.Balance += amount
	account.UpdatedAt = time.Now()
	f.accounts[accountNumber] = account
	return nil
}

func (f *fakeAccountRepository) Withdraw(_ context.Context, accountNumber string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[accountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if account.Balance < amount {
		return domain.ErrInsufficientFunds
	}

	account.Balance -= amount
	account.UpdatedAt = time.Now()
	f.accounts[accountNumber] = account
	return nil
}

func (f *fakeAccountRepository) Transfer(_ context.Context, originAccountNumber string, targetAccountNumber string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	origin, ok := f.accounts[originAccountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}
	target, ok := f.accounts[targetAccountNumber]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if origin.Balance < amount {
		return domain.ErrInsufficientFunds
	}

	origin.Balance -= amount
	target.Balance += amount
	f.accounts[originAccountNumber] = origin
	f.accounts[targetAccountNumber] = target
	return nil
}

func (f *fakeAccountRepository) Delete(_ context.Context, accountNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[accountNumber]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(f.accounts, accountNumber)
	return nil
}

type fakeTransferRepository struct {
	mu      sync.Mutex
	entries []domain.Transfer

	failCreate bool
}

func (f *fakeTransferRepository) Create(_ context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate {
		return domain.Transfer{}, fmt.Errorf("journal unavailable")
	}

	transfer.CreatedAt = time.Now()
	f.entries = append(f.entries, transfer)
	return transfer, nil
}

func (f *fakeTransferRepository) GetAll(_ context.Context) ([]domain.Transfer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Transfer, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

// sequenceNumberGen hands out pre-baked account numbers so tests can address
// the accounts they create.
type sequenceNumberGen struct {
	mu      sync.Mutex
	numbers []string
	next    int
}

func (g *sequenceNumberGen) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= len(g.numbers) {
		return "", fmt.Errorf("number generator exhausted")
	}
	n := g.numbers[g.next]
	g.next++
	return n, nil
}

type fixedPINGen struct {
	pin string
}

func (g fixedPINGen) Generate() (string, error) {
	return g.pin, nil
}
