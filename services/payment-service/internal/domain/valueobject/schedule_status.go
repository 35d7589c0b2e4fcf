package valueobject

import "github.com/PatriickRM/loan-banking-system/pkg/apperr"

// ScheduleStatus is the stored state of one installment. OVERDUE is never
// written by the scanner: an overdue installment is a PENDING entry whose
// due date has passed, derived at read time, so repeated scans stay
// idempotent. The stored OVERDUE/PARTIAL/CANCELLED states exist for manual
// adjustment flows.
type ScheduleStatus struct {
	value string
}

var (
	ScheduleStatusPending   = ScheduleStatus{"PENDING"}
	ScheduleStatusPaid      = ScheduleStatus{"PAID"}
	ScheduleStatusOverdue   = ScheduleStatus{"OVERDUE"}
	ScheduleStatusPartial   = ScheduleStatus{"PARTIAL"}
	ScheduleStatusCancelled = ScheduleStatus{"CANCELLED"}
)

var validScheduleStatuses = map[string]ScheduleStatus{
	"PENDING":   ScheduleStatusPending,
	"PAID":      ScheduleStatusPaid,
	"OVERDUE":   ScheduleStatusOverdue,
	"PARTIAL":   ScheduleStatusPartial,
	"CANCELLED": ScheduleStatusCancelled,
}

// NewScheduleStatus parses a stored status string.
func NewScheduleStatus(value string) (ScheduleStatus, error) {
	s, ok := validScheduleStatuses[value]
	if !ok {
		return ScheduleStatus{}, apperr.Validation("invalid schedule status %q", value)
	}
	return s, nil
}

func (s ScheduleStatus) String() string              { return s.value }
func (s ScheduleStatus) IsZero() bool                { return s.value == "" }
func (s ScheduleStatus) Equal(o ScheduleStatus) bool { return s.value == o.value }
