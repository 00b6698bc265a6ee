package utils

import "math"

// ComputePrimeScore blends today's habit completion ratio, the best streak and
// logged activity minutes into a 0-100 score. Completion carries most of the
// weight; streak and activity cap out at 30 days and 60 minutes.
func ComputePrimeScore(habitCount, completedToday, bestStreak int, activityMinutes float64) int {
	if habitCount <= 0 && activityMinutes <= 0 {
		return 0
	}

	var completion float64
	if habitCount > 0 {
		completion = float64(completedToday) / float64(habitCount)
	}
	streak := math.Min(float64(bestStreak), 30) / 30
	activity := math.Min(activityMinutes, 60) / 60

	score := completion*60 + streak*25 + activity*15
	return int(math.Round(score))
}

func ScoreCategory(score int) string {
	switch {
	case score < 25:
		return "Warming Up"
	case score < 50:
		return "Building"
	case score < 75:
		return "On Track"
	default:
		return "Prime"
	}
}
