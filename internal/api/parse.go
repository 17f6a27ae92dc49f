package api

import (
	"strconv"

	"github.com/purduehcr/points-api/internal/models"
)

// Request fields arrive as loosely typed JSON/form values. These helpers
// keep the historical contract: an absent field is MissingRequiredParameters
// (422), a present-but-wrong one is IncorrectFormat (426).

func parseString(v any) (string, error) {
	if v == nil {
		return "", models.MissingRequiredParameters()
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", models.IncorrectFormat()
	}
	return s, nil
}

func parseBool(v any) (bool, error) {
	if v == nil {
		return false, models.MissingRequiredParameters()
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		if t == "true" || t == "false" {
			return t == "true", nil
		}
	}
	return false, models.IncorrectFormat()
}

func parseNumber(v any) (int, error) {
	if v == nil {
		return 0, models.MissingRequiredParameters()
	}
	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, models.IncorrectFormat()
		}
		return n, nil
	case float64:
		return int(t), nil
	case int:
		return t, nil
	}
	return 0, models.IncorrectFormat()
}
