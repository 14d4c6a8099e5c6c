package types

// RiskCategory is the ordinal band a score falls into.
type RiskCategory string

const (
	CategoryLow      RiskCategory = "low"
	CategoryMedium   RiskCategory = "medium"
	CategoryHigh     RiskCategory = "high"
	CategoryCritical RiskCategory = "critical"
)

// Categories lists all categories in ascending severity.
func Categories() []RiskCategory {
	return []RiskCategory{CategoryLow, CategoryMedium, CategoryHigh, CategoryCritical}
}

// Rank orders categories; unknown categories rank below low.
func (c RiskCategory) Rank() int {
	switch c {
	case CategoryLow:
		return 1
	case CategoryMedium:
		return 2
	case CategoryHigh:
		return 3
	case CategoryCritical:
		return 4
	default:
		return 0
	}
}

func (c RiskCategory) Valid() bool {
	return c.Rank() > 0
}
