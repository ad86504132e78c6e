// Package health computes the business health score shown on the dashboard.
package health

// Score bounds. The floor keeps the gauge from bottoming out visually; this is a
// placeholder heuristic over the open-alert count, not a modeled health function.
const (
	MinScore = 40
	MaxScore = 100
)

// Score maps an open-alert count to a bounded score: 100 minus 10 per alert,
// clamped to [40, 100].
func Score(alertCount int) int {
	score := MaxScore - alertCount*10
	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}
