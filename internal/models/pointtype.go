package models

// PointType is a read-only catalog entry. Value is the delta applied on
// approval; the sign of the stored delta is decided by the ledger call, not
// by the catalog.
type PointType struct {
	ID                 int             `db:"id"                   json:"id"`
	Name               string          `db:"name"                 json:"name"`
	Description        string          `db:"description"          json:"description"`
	Value              int             `db:"value"                json:"value"`
	Enabled            bool            `db:"enabled"              json:"enabled"`
	PermissionLevel    PermissionLevel `db:"permission_level"     json:"permission_level"`
	ResidentsCanSubmit bool            `db:"residents_can_submit" json:"residents_can_submit"`
}
