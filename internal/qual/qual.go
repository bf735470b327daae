// Package qual computes average read quality from Phred+33 quality
// strings. Averaging happens in probability space: scores are converted
// to error probabilities, averaged, and converted back. The arithmetic
// mean of the scores themselves would overweight low-error bases and is
// deliberately not offered.
package qual

import "math"

// Offset is the ASCII offset of Phred+33 quality encoding.
const Offset = 33

var errorProbs [256]float64

func init() {
	for i := range errorProbs {
		errorProbs[i] = math.Pow(10, float64(i-Offset)/-10)
	}
}

// AvgPhred returns the average Phred score of a non-empty Phred+33
// quality string. The empty string is a caller error (the mean of zero
// probabilities is undefined); callers gate on record emptiness first.
func AvgPhred(quals []byte) float64 {
	var sum float64
	for _, q := range quals {
		sum += errorProbs[q]
	}
	return -10 * math.Log10(sum/float64(len(quals)))
}
