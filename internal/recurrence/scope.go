package recurrence

// Scope selects which transactions of a recurrence an update applies to.
type Scope string

const (
	// Single only updates the transaction itself.
	Single Scope = "SINGLE"

	// Future updates the transaction and all later installments.
	Future Scope = "FUTURE"

	// All updates every installment of the recurrence.
	All Scope = "ALL"
)

// ParseScope parses a scope. The empty string is Single.
func ParseScope(s string) (Scope, error) {
	if s == "" {
		return Single, nil
	}

	scope := Scope(s)
	if !scope.Valid() {
		return "", ErrInvalidScope
	}

	return scope, nil
}

func (s Scope) Valid() bool {
	return s == Single || s == Future || s == All
}
