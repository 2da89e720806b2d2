package domain

// AnalyticsSummary is derived from the owner's current task rows on every
// request. It is never persisted and never cached.
//
// TagDistribution counts one per tag occurrence: a task tagged
// ["work","work"] contributes 2 to "work".
type AnalyticsSummary struct {
	CompletedLastWeek      int            `json:"completedLastWeek"`
	AvgCompletionTimeHours float64        `json:"avgCompletionTimeHours"`
	TagDistribution        map[string]int `json:"tagDistribution"`
}
