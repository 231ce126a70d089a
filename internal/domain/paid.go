package domain

import "time"

// NextPaidDate computes the paid_date an invoice should hold after an update
// that sets its paid flag to paid.
//
//   - unpaid (current == nil) and paid: settled today
//   - not paid: cleared, whatever the prior value
//   - already paid and staying paid: the existing date is kept
func NextPaidDate(current *time.Time, paid bool, today time.Time) *time.Time {
	switch {
	case !paid:
		return nil
	case current == nil:
		d := Today(today)
		return &d
	default:
		d := *current
		return &d
	}
}
