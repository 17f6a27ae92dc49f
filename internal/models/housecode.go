package models

// HouseCode is a registration code tying a new account to a house, floor
// and permission level.
type HouseCode struct {
	ID              string          `db:"id"               json:"id"`
	Code            string          `db:"code"             json:"code"`
	CodeName        string          `db:"code_name"        json:"code_name"`
	House           string          `db:"house"            json:"house"`
	FloorID         string          `db:"floor_id"         json:"floor_id"`
	PermissionLevel PermissionLevel `db:"permission_level" json:"permission_level"`
}
