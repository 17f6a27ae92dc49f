package models

// PermissionLevel identifies a user's role in the competition. Values are
// fixed identifiers, not ranks: authorization is always a membership check
// against an explicit set of roles, never an ordering comparison.
type PermissionLevel int

const (
	Resident           PermissionLevel = 0
	RHP                PermissionLevel = 1
	ProfessionalStaff  PermissionLevel = 2
	Faculty            PermissionLevel = 3
	PrivilegedResident PermissionLevel = 4
	ExternalAdvisor    PermissionLevel = 5
)

func (p PermissionLevel) String() string {
	switch p {
	case Resident:
		return "resident"
	case RHP:
		return "rhp"
	case ProfessionalStaff:
		return "professional_staff"
	case Faculty:
		return "faculty"
	case PrivilegedResident:
		return "privileged_resident"
	case ExternalAdvisor:
		return "external_advisor"
	}
	return "unknown"
}

// In reports whether p is one of the allowed roles.
func (p PermissionLevel) In(allowed []PermissionLevel) bool {
	for _, a := range allowed {
		if p == a {
			return true
		}
	}
	return false
}
