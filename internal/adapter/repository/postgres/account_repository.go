package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-ledger/internal/domain"
	"github.com/api-sage/bank-ledger/internal/logger"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	const query = `
SELECT id, account_number, pin, balance, created_at, updated_at
FROM accounts
WHERE account_number = $1`

	var account domain.Account
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(
		&account.ID,
		&account.AccountNumber,
		&account.PIN,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository record not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return domain.Account{}, domain.ErrAccountNotFound
		}
		logger.Error("account repository get failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT id, account_number, pin, balance, created_at, updated_at
FROM accounts
ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("account repository get all failed", err, nil)
		return nil, fmt.Errorf("get all accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.AccountNumber,
			&account.PIN,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

// NextID draws the next account identifier from a store-side sequence. The
// sequence is monotonic across connections and never re-issues a value, so
// identifiers of deleted accounts are never reassigned and two concurrent
// creations can never collide.
func (r *AccountRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('account_ids')`).Scan(&id); err != nil {
		logger.Error("account repository next id failed", err, nil)
		return 0, fmt.Errorf("next account id: %w", err)
	}

	return id, nil
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
	})

	const query = `
INSERT INTO accounts (id, account_number, pin, balance)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.AccountNumber,
		account.PIN,
		account.Balance,
	).Scan(&createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			logger.Info("account repository duplicate account number", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, domain.ErrDuplicateAccountNumber
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt

	logger.Info("account repository create success", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

// Deposit applies the credit as a relative adjustment evaluated by the
// store, so no concurrent writer can slip between a read and the write.
func (r *AccountRepository) Deposit(ctx context.Context, accountNumber string, amount int64) error {
	const query = `
UPDATE accounts
SET balance = balance + $2,
    updated_at = NOW()
WHERE account_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, amount)
	if err != nil {
		logger.Error("account repository deposit failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		return fmt.Errorf("deposit funds: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deposit funds rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotFound
	}

	logger.Info("account repository deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
	})
	return nil
}

// Withdraw carries the balance guard inside the statement. Zero rows
// affected means either the row is missing or the balance was short; a
// follow-up read tells the two apart.
func (r *AccountRepository) Withdraw(ctx context.Context, accountNumber string, amount int64) error {
	const query = `
UPDATE accounts
SET balance = balance - $2,
    updated_at = NOW()
WHERE account_number = $1
  AND balance >= $2`

	result, err := r.db.ExecContext(ctx, query, accountNumber, amount)
	if err != nil {
		logger.Error("account repository withdraw failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		return fmt.Errorf("withdraw funds: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("withdraw funds rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if _, getErr := r.GetByAccountNumber(ctx, accountNumber); getErr != nil {
			return getErr
		}
		return domain.ErrInsufficientFunds
	}

	logger.Info("account repository withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
	})
	return nil
}

// Transfer moves amount from origin to target inside one transaction. Any
// failure after the debit rolls the debit back, so the ledger never shows
// one leg without the other.
func (r *AccountRepository) Transfer(ctx context.Context, originAccountNumber string, targetAccountNumber string, amount int64) error {
	logger.Info("account repository transfer", logger.Fields{
		"originAccountNumber": originAccountNumber,
		"targetAccountNumber": targetAccountNumber,
		"amount":              amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transfer tx: %w", err)
	}

	const debitQuery = `
UPDATE accounts
SET balance = balance - $2,
    updated_at = NOW()
WHERE account_number = $1
  AND balance >= $2`

	debitResult, err := tx.ExecContext(ctx, debitQuery, originAccountNumber, amount)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("transfer debit: %w", err)
	}

	debited, err := debitResult.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("transfer debit rows affected: %w", err)
	}
	if debited == 0 {
		_ = tx.Rollback()
		if _, getErr := r.GetByAccountNumber(ctx, originAccountNumber); getErr != nil {
			return getErr
		}
		return domain.ErrInsufficientFunds
	}

	const creditQuery = `
UPDATE accounts
SET balance = balance + $2,
    updated_at = NOW()
WHERE account_number = $1`

	creditResult, err := tx.ExecContext(ctx, creditQuery, targetAccountNumber, amount)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("transfer credit: %w", err)
	}

	credited, err := creditResult.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("transfer credit rows affected: %w", err)
	}
	if credited == 0 {
		_ = tx.Rollback()
		return domain.ErrAccountNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transfer tx: %w", err)
	}

	logger.Info("account repository transfer success", logger.Fields{
		"originAccountNumber": originAccountNumber,
		"targetAccountNumber": targetAccountNumber,
		"amount":              amount,
	})
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountNumber string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE account_number = $1`, accountNumber)
	if err != nil {
		logger.Error("account repository delete failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotFound
	}

	logger.Info("account repository delete success", logger.Fields{
		"accountNumber": accountNumber,
	})
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
