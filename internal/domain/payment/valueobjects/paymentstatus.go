package valueobjects

// PaymentStatus follows Pending -> Successful or Pending -> Failed. Both
// outcomes are terminal; a new attempt is a new payment record.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "Pending"
	PaymentStatusSuccessful PaymentStatus = "Successful"
	PaymentStatusFailed     PaymentStatus = "Failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccessful, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsSuccessful() bool {
	return s == PaymentStatusSuccessful
}

func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusPending
}

func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusSuccessful || s == PaymentStatusFailed
}

func (s PaymentStatus) String() string {
	return string(s)
}
