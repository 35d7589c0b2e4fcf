package valueobject

import "fmt"

// LoanStatus is the lifecycle stage of a loan. Immutable value object.
type LoanStatus struct {
	value string
}

const (
	loanStatusPending   = "PENDING"
	loanStatusApproved  = "APPROVED"
	loanStatusRejected  = "REJECTED"
	loanStatusActive    = "ACTIVE"
	loanStatusCompleted = "COMPLETED"
	loanStatusDefaulted = "DEFAULTED"
	loanStatusCancelled = "CANCELLED"
)

var (
	LoanStatusPending   = LoanStatus{value: loanStatusPending}
	LoanStatusApproved  = LoanStatus{value: loanStatusApproved}
	LoanStatusRejected  = LoanStatus{value: loanStatusRejected}
	LoanStatusActive    = LoanStatus{value: loanStatusActive}
	LoanStatusCompleted = LoanStatus{value: loanStatusCompleted}
	LoanStatusDefaulted = LoanStatus{value: loanStatusDefaulted}
	LoanStatusCancelled = LoanStatus{value: loanStatusCancelled}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusPending:   LoanStatusPending,
	loanStatusApproved:  LoanStatusApproved,
	loanStatusRejected:  LoanStatusRejected,
	loanStatusActive:    LoanStatusActive,
	loanStatusCompleted: LoanStatusCompleted,
	loanStatusDefaulted: LoanStatusDefaulted,
	loanStatusCancelled: LoanStatusCancelled,
}

// NewLoanStatus creates a LoanStatus from its stored string form.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the stored string form.
func (s LoanStatus) String() string { return s.value }

// IsZero reports whether the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal reports whether both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsTerminal reports whether no further transition is legal.
// COMPLETED, REJECTED, CANCELLED and DEFAULTED are final.
func (s LoanStatus) IsTerminal() bool {
	switch s.value {
	case loanStatusCompleted, loanStatusRejected, loanStatusCancelled, loanStatusDefaulted:
		return true
	}
	return false
}
