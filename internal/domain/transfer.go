package domain

import "time"

type TransferStatus string

const (
	TransferStatusSuccess TransferStatus = "SUCCESS"
	TransferStatusFailed  TransferStatus = "FAILED"
)

// Transfer is a journal entry recording a money movement between two
// accounts. The journal is an audit trail; the balances themselves live on
// the account rows.
type Transfer struct {
	ID                  string
	OriginAccountNumber string
	TargetAccountNumber string
	Amount              int64
	Status              TransferStatus
	CreatedAt           time.Time
}
