package generator

import "time"

// freshnessScore rates how long ago a script was last selected, on a
// 0.3-1.0 scale. Never-used scripts are the freshest. The selector ranks
// candidates by this score to bias rotation away from recent picks.
func freshnessScore(lastSelected *time.Time, now time.Time) float64 {
	if lastSelected == nil {
		return 1.0
	}
	days := int(now.Sub(*lastSelected).Hours() / 24)
	switch {
	case days >= 14:
		return 1.0
	case days >= 7:
		return 0.8
	case days >= 3:
		return 0.6
	default:
		return 0.3
	}
}
