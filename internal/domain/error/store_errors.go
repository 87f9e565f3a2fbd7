package error

import "errors"

// State store domain errors.
var (
	// ErrNotSignedIn is returned when a mutation requires an authenticated
	// (or demo) identity and none is present.
	ErrNotSignedIn = errors.New("no active session")

	// ErrTaskNotFound is returned when a task id is not in the local collection.
	ErrTaskNotFound = errors.New("task not found")

	// ErrHabitNotFound is returned when a habit id is not in the local collection.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrNoteNotFound is returned when a note id is not in the local collection.
	ErrNoteNotFound = errors.New("note not found")

	// ErrGoalNotFound is returned when a goal id is not in the local collection.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrDebtNotFound is returned when a debt id is not in the local collection.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrTransactionNotFound is returned when a transaction id is not in the local collection.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrStoreClosed is returned when a mutation is issued after teardown.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidPriority is returned when a task priority is not low, medium or high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidTransactionType is returned when a transaction type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDate is returned when a calendar day is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
)

// StoreErrorCode defines error codes for state store errors.
// Format: STORE-XXYYYY where XX is category and YYYY is specific error.
type StoreErrorCode string

const (
	// Session errors (01XXXX)
	ErrCodeNotSignedIn StoreErrorCode = "STORE-010001"
	ErrCodeStoreClosed StoreErrorCode = "STORE-010002"

	// Lookup errors (02XXXX)
	ErrCodeTaskNotFound        StoreErrorCode = "STORE-020001"
	ErrCodeHabitNotFound       StoreErrorCode = "STORE-020002"
	ErrCodeNoteNotFound        StoreErrorCode = "STORE-020003"
	ErrCodeGoalNotFound        StoreErrorCode = "STORE-020004"
	ErrCodeDebtNotFound        StoreErrorCode = "STORE-020005"
	ErrCodeTransactionNotFound StoreErrorCode = "STORE-020006"

	// Validation errors (03XXXX)
	ErrCodeInvalidPriority        StoreErrorCode = "STORE-030001"
	ErrCodeInvalidTransactionType StoreErrorCode = "STORE-030002"
	ErrCodeInvalidDate            StoreErrorCode = "STORE-030003"
)
