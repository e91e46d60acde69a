package common

import "math"

// CosineSimilarity returns the cosine similarity of a and b.
// The boolean is false when the vectors are empty, of different lengths, or have a zero norm.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// CosineDistance returns 1 - CosineSimilarity(a, b).
// Vectors that cannot be compared get the maximum distance of 2.
func CosineDistance(a, b []float64) float64 {
	sim, ok := CosineSimilarity(a, b)
	if !ok {
		return 2
	}
	return 1 - sim
}

// ToFloat32 converts a vector to single precision.
func ToFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}

// ToFloat64 converts a vector to double precision.
func ToFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
