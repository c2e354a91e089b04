package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAccountBlocked indicates that the account's active flag is false.
// Blocked accounts reject every financial operation.
var ErrAccountBlocked = errors.New("account blocked")

// ErrInsufficientBalance indicates a debiting operation larger than the balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrDailyLimitExceeded indicates the withdrawal would exceed the account's
// daily withdrawal limit for the current UTC day. Withdrawal-only.
var ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

// ErrSameAccount indicates a transfer with identical source and destination.
var ErrSameAccount = errors.New("transfer source and destination accounts are the same")

// ErrInvalidAmount indicates a negative or malformed amount, rejected before
// the transaction validator runs.
var ErrInvalidAmount = errors.New("amount must be a positive value")

// ErrStorageFailure indicates a storage-layer fault, as opposed to a financial
// denial. Any partially applied unit of work has been rolled back.
var ErrStorageFailure = errors.New("storage failure")
