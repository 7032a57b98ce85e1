package service

import "math"

// RecomputeRating returns the aggregate rating for a review set: the
// arithmetic mean rounded to one decimal place, or 0 for an empty set.
func RecomputeRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, rating := range ratings {
		total += rating
	}
	mean := float64(total) / float64(len(ratings))
	return math.Round(mean*10) / 10
}
