package generator

import "math"

// Hash maps a seed string to a stable non-negative integer. Same seed always
// yields the same value within and across process runs — there is no salt and
// no time-based entropy. Not cryptographic; only used to pick pool indexes.
func Hash(seed string) int {
	var h int32
	for _, r := range seed {
		h = h*31 + r
	}
	if h == math.MinInt32 {
		return 0
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// PickIndex selects a stable index into a pool of the given size.
// Empty seeds map to index 0; a pool size below 1 always yields 0 so callers
// never have to guard their lookups.
func PickIndex(seed string, poolSize int) int {
	if poolSize < 1 {
		return 0
	}
	return Hash(seed) % poolSize
}
