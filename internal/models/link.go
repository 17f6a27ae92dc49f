package models

// Link is a shareable/scannable claim for a point type, owned by its
// creator.
type Link struct {
	ID           string `db:"id"            json:"id"`
	CreatorID    string `db:"creator_id"    json:"creator_id"`
	PointTypeID  int    `db:"point_type_id" json:"point_type_id"`
	Description  string `db:"description"   json:"description"`
	SingleUse    bool   `db:"single_use"    json:"single_use"`
	Enabled      bool   `db:"enabled"       json:"enabled"`
	Archived     bool   `db:"archived"      json:"archived"`
	ClaimedCount int    `db:"claimed_count" json:"claimed_count"`
}

// LinkUpdate holds the optional fields of a link update request; nil means
// leave unchanged.
type LinkUpdate struct {
	Archived    *bool
	Enabled     *bool
	Description *string
	SingleUse   *bool
}

func (u LinkUpdate) Empty() bool {
	return u.Archived == nil && u.Enabled == nil && u.Description == nil && u.SingleUse == nil
}
