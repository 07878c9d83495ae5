package picking

// Closest returns the candidate with the nearest positive hit distance.
// Candidates are tested in order and an exact tie keeps the earlier one.
func Closest[T any](ray Ray, candidates []T, test func(T, Ray) (float32, bool)) (best T, dist float32, ok bool) {
	for _, c := range candidates {
		t, hit := test(c, ray)
		if !hit || t <= 0 {
			continue
		}
		if !ok || t < dist {
			best, dist, ok = c, t, true
		}
	}
	return best, dist, ok
}
