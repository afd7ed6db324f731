package contract

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeContractPaused      Code = "CONTRACT_PAUSED"
	CodeInvalidAmount       Code = "INVALID_AMOUNT"
	CodeAmountExceedsLimit  Code = "AMOUNT_EXCEEDS_LIMIT"
	CodeSupplyExceeded      Code = "SUPPLY_EXCEEDED"
	CodeInsufficientPayment Code = "INSUFFICIENT_PAYMENT"
	CodeUnknownItem         Code = "UNKNOWN_ITEM"
	CodeTransferFailed      Code = "TRANSFER_FAILED"
	CodeRoyaltyOverflow     Code = "ROYALTY_OVERFLOW"

	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidAddress  Code = "INVALID_ADDRESS"
	CodeNotDeployed     Code = "NOT_DEPLOYED"
	CodeAlreadyDeployed Code = "ALREADY_DEPLOYED"
	CodeStorage         Code = "STORAGE"
)

// Error is the contract error type. Two errors are equal under errors.Is
// when their codes match, so callers test against the Err* sentinels.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a contract error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	ErrUnauthorized        = &Error{Code: CodeUnauthorized, Message: "caller is not the owner"}
	ErrContractPaused      = &Error{Code: CodeContractPaused, Message: "minting is paused"}
	ErrInvalidAmount       = &Error{Code: CodeInvalidAmount, Message: "mint amount must be greater than zero"}
	ErrAmountExceedsLimit  = &Error{Code: CodeAmountExceedsLimit, Message: "mint amount exceeds the per-transaction limit"}
	ErrSupplyExceeded      = &Error{Code: CodeSupplyExceeded, Message: "max supply exceeded"}
	ErrInsufficientPayment = &Error{Code: CodeInsufficientPayment, Message: "insufficient payment"}
	ErrUnknownItem         = &Error{Code: CodeUnknownItem, Message: "nonexistent token"}
	ErrTransferFailed      = &Error{Code: CodeTransferFailed, Message: "transfer failed"}
	ErrRoyaltyOverflow     = &Error{Code: CodeRoyaltyOverflow, Message: "royalty computation overflows"}
	ErrInvalidArgument     = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrInvalidAddress      = &Error{Code: CodeInvalidAddress, Message: "invalid address"}
	ErrNotDeployed         = &Error{Code: CodeNotDeployed, Message: "contract is not deployed"}
	ErrAlreadyDeployed     = &Error{Code: CodeAlreadyDeployed, Message: "contract is already deployed"}
)

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func storageError(message string, cause error) *Error {
	return wrapError(CodeStorage, message, cause)
}

// CodeOf returns the code of err, or "" when err is not a contract error.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
