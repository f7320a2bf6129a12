package core


import (
	"fmt"

	"github.com/pkg/errors"
)


var (
	// The caller broke the input contract of a generation call.
	ErrContractViolation = errors.New("contract violation")

	// The package catalog has nothing left to pick from.
	ErrCatalogExhausted = errors.New("package catalog exhausted")
)


type ContractViolationError struct {
	Op      string
	Reason  string
}

func NewContractViolation(op, format string, args ...interface{}) *ContractViolationError {
	return &ContractViolationError{
		Op: op,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (this *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", this.Op, ErrContractViolation.Error(),
		this.Reason)
}

func (this *ContractViolationError) Is(target error) bool {
	return target == ErrContractViolation
}
