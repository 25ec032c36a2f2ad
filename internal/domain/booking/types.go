package booking

// Status is the authoritative lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// validTransitions is the status state machine. Terminal statuses map to an
// empty set; completed is terminal for status transitions but still carries
// the payout flag transition.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusRejected:  {},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

func (s Status) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// PayoutStatus is the settlement-flag transition on completed bookings.
// There is no intermediate marker between none and paid: the flip happens in
// the same conditional write that commits the ledger credit decision.
type PayoutStatus string

const (
	PayoutNone PayoutStatus = "none"
	PayoutPaid PayoutStatus = "paid"
)

func (p PayoutStatus) String() string {
	return string(p)
}

func (p PayoutStatus) IsValid() bool {
	switch p {
	case PayoutNone, PayoutPaid:
		return true
	default:
		return false
	}
}
