package valueobjects

// MembershipStatus is derived from the renewal date: a member is active
// while the renewal date lies strictly in the future.
type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipExpired MembershipStatus = "expired"
)

func (s MembershipStatus) IsValid() bool {
	return s == MembershipActive || s == MembershipExpired
}

func (s MembershipStatus) IsActive() bool {
	return s == MembershipActive
}

func (s MembershipStatus) String() string {
	return string(s)
}
