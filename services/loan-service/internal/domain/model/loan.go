package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PatriickRM/loan-banking-system/pkg/apperr"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/event"
	"github.com/PatriickRM/loan-banking-system/services/loan-service/internal/domain/valueobject"
)

// Loan is an immutable aggregate. Mutations return a new copy carrying the
// domain events recorded by the transition; repositories persist state and
// outbox entries in one transaction.
type Loan struct {
	id                 string
	customerID         string
	productID          string
	amount             decimal.Decimal
	approvedAmount     decimal.NullDecimal
	interestRate       decimal.Decimal // frozen from the product at application time
	termMonths         int
	purpose            string
	status             valueobject.LoanStatus
	monthlyPayment     decimal.Decimal
	totalAmount        decimal.Decimal
	outstandingBalance decimal.Decimal
	evaluatedBy        string
	rejectionReason    string
	applicationDate    time.Time
	approvalDate       *time.Time
	rejectionDate      *time.Time
	disbursementDate   *time.Time
	completionDate     *time.Time
	version            int
	domainEvents       []event.DomainEvent
}

// NewLoan validates an application against the product and creates a PENDING
// loan with its amortization precomputed. Records loan.created.
func NewLoan(customerID string, product LoanProduct, amount decimal.Decimal, termMonths int, purpose string, now time.Time) (Loan, error) {
	if customerID == "" {
		return Loan{}, apperr.Validation("customer id is required")
	}
	if err := product.ValidateRequest(amount, termMonths); err != nil {
		return Loan{}, err
	}

	amort, err := Amortize(amount, product.InterestRate, termMonths)
	if err != nil {
		return Loan{}, err
	}

	loan := Loan{
		id:              uuid.New().String(),
		customerID:      customerID,
		productID:       product.ID,
		amount:          amount,
		interestRate:    product.InterestRate,
		termMonths:      termMonths,
		purpose:         purpose,
		status:          valueobject.LoanStatusPending,
		monthlyPayment:  amort.MonthlyPayment,
		totalAmount:     amort.TotalAmount,
		applicationDate: now,
		version:         1,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanCreated(
		loan.id, customerID, amount, termMonths, loan.interestRate, purpose,
	))
	return loan, nil
}

// ReconstructLoan rebuilds a Loan from persistence.
func ReconstructLoan(
	id, customerID, productID string,
	amount decimal.Decimal,
	approvedAmount decimal.NullDecimal,
	interestRate decimal.Decimal,
	termMonths int,
	purpose string,
	status valueobject.LoanStatus,
	monthlyPayment, totalAmount, outstandingBalance decimal.Decimal,
	evaluatedBy, rejectionReason string,
	applicationDate time.Time,
	approvalDate, rejectionDate, disbursementDate, completionDate *time.Time,
	version int,
) Loan {
	return Loan{
		id:                 id,
		customerID:         customerID,
		productID:          productID,
		amount:             amount,
		approvedAmount:     approvedAmount,
		interestRate:       interestRate,
		termMonths:         termMonths,
		purpose:            purpose,
		status:             status,
		monthlyPayment:     monthlyPayment,
		totalAmount:        totalAmount,
		outstandingBalance: outstandingBalance,
		evaluatedBy:        evaluatedBy,
		rejectionReason:    rejectionReason,
		applicationDate:    applicationDate,
		approvalDate:       approvalDate,
		rejectionDate:      rejectionDate,
		disbursementDate:   disbursementDate,
		completionDate:     completionDate,
		version:            version,
	}
}

// Approve transitions PENDING -> APPROVED. The amortization is re-run with
// the approved amount as principal; the rate stays frozen. Records
// loan.approved.
func (l Loan) Approve(approvedAmount decimal.Decimal, evaluatedBy string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, apperr.Conflict("only pending loans can be approved, loan %s is %s", l.id, l.status)
	}
	if approvedAmount.LessThanOrEqual(decimal.Zero) {
		return l, apperr.Validation("approved amount must be positive, got %s", approvedAmount)
	}

	amort, err := Amortize(approvedAmount, l.interestRate, l.termMonths)
	if err != nil {
		return l, err
	}

	next := l
	next.approvedAmount = decimal.NullDecimal{Decimal: approvedAmount, Valid: true}
	next.monthlyPayment = amort.MonthlyPayment
	next.totalAmount = amort.TotalAmount
	next.evaluatedBy = evaluatedBy
	next.status = valueobject.LoanStatusApproved
	next.approvalDate = &now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApproved(
		l.id, l.customerID, approvedAmount, evaluatedBy,
	))
	return next, nil
}

// Reject transitions PENDING -> REJECTED and records loan.rejected.
func (l Loan) Reject(reason, evaluatedBy string, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, apperr.Conflict("only pending loans can be rejected, loan %s is %s", l.id, l.status)
	}
	next := l
	next.status = valueobject.LoanStatusRejected
	next.rejectionReason = reason
	next.evaluatedBy = evaluatedBy
	next.rejectionDate = &now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanRejected(l.id, l.customerID, reason))
	return next, nil
}

// Cancel transitions PENDING -> CANCELLED. A cancelled application emits
// nothing: no downstream service has acted on it yet.
func (l Loan) Cancel(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusPending) {
		return l, apperr.Conflict("only pending loans can be cancelled, loan %s is %s", l.id, l.status)
	}
	next := l
	next.status = valueobject.LoanStatusCancelled
	next.rejectionDate = &now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// Disburse transitions APPROVED -> ACTIVE, opening the outstanding balance
// at the disbursed principal. The schedule's principal columns sum to the
// same figure, so applying every payment's principal drives the balance to
// exactly zero. Records loan.disbursed with the figures the schedule
// generator expands.
func (l Loan) Disburse(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusApproved) {
		return l, apperr.Conflict("only approved loans can be disbursed, loan %s is %s", l.id, l.status)
	}
	principal := l.amount
	if l.approvedAmount.Valid {
		principal = l.approvedAmount.Decimal
	}
	next := l
	next.status = valueobject.LoanStatusActive
	next.outstandingBalance = principal
	next.disbursementDate = &now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanDisbursed(
		l.id, l.customerID, principal, l.totalAmount, l.monthlyPayment, l.termMonths, l.interestRate, now,
	))
	return next, nil
}

// ApplyPrincipal decrements the outstanding balance by the principal portion
// of a received payment, flooring at zero. At zero the loan transitions
// ACTIVE -> COMPLETED. Deduplication of redelivered payment events happens
// in the repository, keyed by payment id.
func (l Loan) ApplyPrincipal(principalPaid decimal.Decimal, now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, apperr.Conflict("payments only apply to active loans, loan %s is %s", l.id, l.status)
	}
	if principalPaid.LessThanOrEqual(decimal.Zero) {
		return l, apperr.Validation("principal paid must be positive, got %s", principalPaid)
	}

	next := l
	next.outstandingBalance = l.outstandingBalance.Sub(principalPaid)
	if next.outstandingBalance.LessThanOrEqual(decimal.Zero) {
		next.outstandingBalance = decimal.Zero
		next.status = valueobject.LoanStatusCompleted
		next.completionDate = &now
	}
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

// MarkDefaulted transitions ACTIVE -> DEFAULTED.
func (l Loan) MarkDefaulted(now time.Time) (Loan, error) {
	if !l.status.Equal(valueobject.LoanStatusActive) {
		return l, apperr.Conflict("only active loans can default, loan %s is %s", l.id, l.status)
	}
	next := l
	next.status = valueobject.LoanStatusDefaulted
	next.completionDate = &now
	next.domainEvents = copyEvents(l.domainEvents)
	return next, nil
}

func (l Loan) ID() string                          { return l.id }
func (l Loan) CustomerID() string                  { return l.customerID }
func (l Loan) ProductID() string                   { return l.productID }
func (l Loan) Amount() decimal.Decimal             { return l.amount }
func (l Loan) ApprovedAmount() decimal.NullDecimal { return l.approvedAmount }
func (l Loan) InterestRate() decimal.Decimal       { return l.interestRate }
func (l Loan) TermMonths() int                     { return l.termMonths }
func (l Loan) Purpose() string                     { return l.purpose }
func (l Loan) Status() valueobject.LoanStatus      { return l.status }
func (l Loan) MonthlyPayment() decimal.Decimal     { return l.monthlyPayment }
func (l Loan) TotalAmount() decimal.Decimal        { return l.totalAmount }
func (l Loan) OutstandingBalance() decimal.Decimal { return l.outstandingBalance }
func (l Loan) EvaluatedBy() string                 { return l.evaluatedBy }
func (l Loan) RejectionReason() string             { return l.rejectionReason }
func (l Loan) ApplicationDate() time.Time          { return l.applicationDate }
func (l Loan) ApprovalDate() *time.Time            { return l.approvalDate }
func (l Loan) RejectionDate() *time.Time           { return l.rejectionDate }
func (l Loan) DisbursementDate() *time.Time        { return l.disbursementDate }
func (l Loan) CompletionDate() *time.Time          { return l.completionDate }
func (l Loan) Version() int                        { return l.version }
func (l Loan) DomainEvents() []event.DomainEvent   { return l.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
