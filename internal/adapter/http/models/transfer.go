package models

import (
	"errors"
	"strings"
)

type TransferRequest struct {
	OriginAccountNumber string `json:"originAccountNumber"`
	TargetAccountNumber string `json:"targetAccountNumber"`
	PIN                 string `json:"pin"`
	Amount              string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if !isAccountNumber(r.OriginAccountNumber) {
		errs = append(errs, "originAccountNumber must be numeric")
	}
	if !isAccountNumber(r.TargetAccountNumber) {
		errs = append(errs, "targetAccountNumber must be numeric")
	}
	if !isSixDigitPIN(r.PIN) {
		errs = append(errs, "pin must be exactly 6 digits")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// TransferResponse returns both accounts as they stand after the movement.
type TransferResponse struct {
	Origin AccountResponse `json:"origin"`
	Target AccountResponse `json:"target"`
}

type TransferEntryResponse struct {
	ID                  string `json:"id"`
	OriginAccountNumber string `json:"originAccountNumber"`
	TargetAccountNumber string `json:"targetAccountNumber"`
	Amount              int64  `json:"amount"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
}
