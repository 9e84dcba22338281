package vectorspace

import "math"

// CosineSimilarity computes the cosine similarity between two sparse vectors.
// Returns 0 when either vector has zero magnitude, so callers never divide by
// zero.
func CosineSimilarity(a, b map[string]float64) float64 {
	// Iterate the smaller vector for the dot product.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	dot := 0.0
	for term, x := range small {
		if y, ok := large[term]; ok {
			dot += x * y
		}
	}
	if dot == 0 {
		return 0
	}

	normA := 0.0
	for _, x := range a {
		normA += x * x
	}
	normB := 0.0
	for _, y := range b {
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
