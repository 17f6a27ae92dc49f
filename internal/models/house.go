package models

// House is one of the five fixed competition teams. TotalPoints is mutated
// only through the ledger increment in the db package.
type House struct {
	Name              string `db:"name"                json:"name"`
	Color             string `db:"color"               json:"color"`
	Description       string `db:"description"         json:"description"`
	NumberOfResidents int    `db:"number_of_residents" json:"number_of_residents"`
	TotalPoints       int    `db:"total_points"        json:"total_points"`
}

type SystemPreferences struct {
	IsCompetitionEnabled     bool   `db:"is_competition_enabled"     json:"is_competition_enabled"`
	IsCompetitionVisible     bool   `db:"is_competition_visible"     json:"is_competition_visible"`
	CompetitionHiddenMessage string `db:"competition_hidden_message" json:"competition_hidden_message"`
}
