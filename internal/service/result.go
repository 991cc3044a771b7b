package service

import "github.com/mehidihasan1/twixdbot/pkg/telco"

// Result is the single shape every provider operation returns. Exactly one
// side is populated: Message carries terminal user-facing text (success of a
// single-object operation, an informational empty result, or a normalized
// error), otherwise one of the record lists is non-empty and the caller
// renders it. Raw provider faults never leave this package.
type Result struct {
	Message   string
	Available []telco.AvailableNumber
	Owned     []telco.OwnedNumber
}

func (r Result) IsMessage() bool {
	return r.Message != ""
}

func messageResult(msg string) Result {
	return Result{Message: msg}
}
