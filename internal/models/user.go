package models

// User is read-only to this service: accounts are provisioned by the
// user-management flow, we only resolve and authorize them per request.
type User struct {
	ID              string          `db:"id"`
	FirstName       string          `db:"first_name"`
	LastName        string          `db:"last_name"`
	House           *string         `db:"house"`
	PermissionLevel PermissionLevel `db:"permission_level"`
	FloorID         *string         `db:"floor_id"`
	TotalPoints     int             `db:"total_points"`
	SemesterPoints  int             `db:"semester_points"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HouseName returns the home house, or "" for houseless roles
// (professional staff, external advisors).
func (u *User) HouseName() string {
	if u.House == nil {
		return ""
	}
	return *u.House
}
