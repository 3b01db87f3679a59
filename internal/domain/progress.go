package domain

import "math"

// statusWeight maps a status to its completion weight.
func statusWeight(s Status) float64 {
	switch s {
	case StatusDone:
		return 1
	case StatusInProgress:
		return 0.5
	default:
		return 0
	}
}

// ProgressFromStatus converts a single status to a 0-100 percentage.
func ProgressFromStatus(s Status) int {
	return int(math.Round(statusWeight(s) * 100))
}

// ProgressFromChildStatuses averages the weights of the given child statuses
// and scales to 0-100, rounding half up. An empty list yields 0.
func ProgressFromChildStatuses(statuses []Status) int {
	if len(statuses) == 0 {
		return 0
	}
	var sum float64
	for _, s := range statuses {
		sum += statusWeight(s)
	}
	return int(math.Round(sum / float64(len(statuses)) * 100))
}

// CombineProgress averages already-computed percentages, rounding half up.
// An empty list yields 0. The mean is unweighted: a phase with one work
// counts the same as a phase with twenty.
func CombineProgress(percents []int) int {
	if len(percents) == 0 {
		return 0
	}
	var sum int
	for _, p := range percents {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(percents))))
}
