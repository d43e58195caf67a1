package domain

import "time"

type Account struct {
	ID            int64
	AccountNumber string
	PIN           string
	Balance       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VerifyPIN gates every mutating ledger operation. The PIN is stored exactly
// as the generator produced it, so the check is plain string equality.
func (a Account) VerifyPIN(pin string) bool {
	return a.PIN != "" && a.PIN == pin
}
