package economy

import "fmt"

// RuleError is a business-rule violation the caller can act on.
type RuleError struct {
	Code    string
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Is matches rule errors by code so wrapped variants with extra detail still compare equal.
func (e *RuleError) Is(target error) bool {
	other, ok := target.(*RuleError)
	return ok && other.Code == e.Code
}

var (
	ErrInsufficientFunds     = &RuleError{Code: "INSUFFICIENT_FUNDS", Message: "insufficient coins"}
	ErrAlreadyClaimed        = &RuleError{Code: "ALREADY_CLAIMED", Message: "daily reward already claimed today"}
	ErrQuestAlreadyCompleted = &RuleError{Code: "QUEST_ALREADY_COMPLETED", Message: "quest already completed"}
)

func insufficientFunds(has, needs int64) error {
	return &RuleError{
		Code:    ErrInsufficientFunds.Code,
		Message: fmt.Sprintf("insufficient coins (has %d, needs %d)", has, needs),
	}
}
