package validators

import (
	"primecasa-catalog/internal/models"
)

// CriteriaValidator normalizes externally supplied filter values before they
// reach the query planner. Unknown enum values are coerced to "no
// constraint" rather than rejected.
type CriteriaValidator interface {
	Normalize(criteria models.FilterCriteria) models.FilterCriteria
}
