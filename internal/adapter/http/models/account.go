package models

import (
	"errors"
	"strings"
)

type CreateAccountRequest struct {
	InitialDeposit string `json:"initialDeposit,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.HasPrefix(strings.TrimSpace(r.InitialDeposit), "-") {
		errs = append(errs, "initialDeposit cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// CreateAccountResponse is the only payload that ever carries the PIN. The
// holder has no way to recover it later.
type CreateAccountResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	PIN           string `json:"pin"`
	Balance       int64  `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}

type AccountResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

type DepositRequest struct {
	AccountNumber string `json:"accountNumber"`
	PIN           string `json:"pin"`
	Amount        string `json:"amount"`
}

func (r DepositRequest) Validate() error {
	return validateMutation(r.AccountNumber, r.PIN, r.Amount)
}

type WithdrawRequest struct {
	AccountNumber string `json:"accountNumber"`
	PIN           string `json:"pin"`
	Amount        string `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	return validateMutation(r.AccountNumber, r.PIN, r.Amount)
}

type DeleteAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
	PIN           string `json:"pin"`
}

func (r DeleteAccountRequest) Validate() error {
	var errs []string

	if !isAccountNumber(r.AccountNumber) {
		errs = append(errs, "accountNumber must be numeric")
	}
	if !isSixDigitPIN(r.PIN) {
		errs = append(errs, "pin must be exactly 6 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type DeleteAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
}

func validateMutation(accountNumber, pin, amount string) error {
	var errs []string

	if !isAccountNumber(accountNumber) {
		errs = append(errs, "accountNumber must be numeric")
	}
	if !isSixDigitPIN(pin) {
		errs = append(errs, "pin must be exactly 6 digits")
	}
	if strings.TrimSpace(amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func isAccountNumber(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && digitsOnly(trimmed)
}

func isSixDigitPIN(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) == 6 && digitsOnly(trimmed)
}

func digitsOnly(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
