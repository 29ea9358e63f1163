package models

// Severity ranks how urgent a recommendation is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank orders severities: error first, info last.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Category groups recommendations by the kind of gain they target.
type Category string

const (
	CategoryPerformance  Category = "performance"
	CategoryCost         Category = "cost"
	CategoryBestPractice Category = "best-practice"
	CategoryHotPartition Category = "hot-partition"
	CategoryCapacity     Category = "capacity"
)

type EstimatedImpact struct {
	CostReduction          string `json:"costReduction,omitempty"`
	PerformanceImprovement string `json:"performanceImprovement,omitempty"`
}

// Recommendation is an actionable optimization hint. It has no identity: two recommendations
// with the same fields are the same recommendation.
type Recommendation struct {
	Severity           Severity         `json:"severity"`
	Category           Category         `json:"category"`
	Message            string           `json:"message"`
	Details            string           `json:"details"`
	SuggestedAction    string           `json:"suggestedAction,omitempty"`
	AffectedOperations []OperationType  `json:"affectedOperations,omitempty"`
	EstimatedImpact    *EstimatedImpact `json:"estimatedImpact,omitempty"`
}
