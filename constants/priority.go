package constants

// Priority orders jobs within a stage queue. Lower rank pops first.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
	PriorityBatch    Priority = "batch"
)

var priorityRanks = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityNormal:   2,
	PriorityLow:      3,
	PriorityBatch:    4,
}

// Rank returns the queue-ordering weight. Unknown priorities sort as normal.
func (p Priority) Rank() int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return priorityRanks[PriorityNormal]
}

func (p Priority) Valid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Raise returns the next higher tier, saturating at critical.
func (p Priority) Raise() Priority {
	switch p {
	case PriorityBatch:
		return PriorityLow
	case PriorityLow:
		return PriorityNormal
	case PriorityNormal:
		return PriorityHigh
	default:
		return PriorityCritical
	}
}

// Lower returns the next lower tier, saturating at batch.
func (p Priority) Lower() Priority {
	switch p {
	case PriorityCritical:
		return PriorityHigh
	case PriorityHigh:
		return PriorityNormal
	case PriorityNormal:
		return PriorityLow
	default:
		return PriorityBatch
	}
}
