package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskcli/internal/service"
	"taskcli/internal/viewmodel"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number from args. The number refers
// to the task's position in the current server order, matching the list
// output.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	arg := args[0]
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	return num, nil
}

// loadModel builds a view-model over svc and fills it with the current
// server state.
func loadModel(ctx context.Context, svc service.Service) (*viewmodel.Model, error) {
	vm := viewmodel.New(svc)
	if err := vm.Load(ctx); err != nil {
		return nil, err
	}
	return vm, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
