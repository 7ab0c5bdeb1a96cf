package valueobjects

// MemberStatus is the administrative account status, managed by staff.
// It is independent of membership expiry tracking.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "Active"
	MemberStatusInactive  MemberStatus = "Inactive"
	MemberStatusSuspended MemberStatus = "Suspended"
)

func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusSuspended:
		return true
	default:
		return false
	}
}

// CanCheckIn reports whether the account status allows gym access.
func (s MemberStatus) CanCheckIn() bool {
	return s == MemberStatusActive
}

func (s MemberStatus) String() string {
	return string(s)
}

var ValidMemberStatuses = map[MemberStatus]bool{
	MemberStatusActive:    true,
	MemberStatusInactive:  true,
	MemberStatusSuspended: true,
}
