package domain

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrWrongPIN = errors.New("Wrong PIN")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrSameAccount = errors.New("Origin and target accounts are the same")
var ErrDuplicateAccountNumber = errors.New("Account number already exists")
