// internal/measure/series.go
package measure

import (
	"errors"
	"math"
)

// ErrEmptySeries is returned when a summary is requested before any sample.
var ErrEmptySeries = errors.New("measure: series is empty")

// Series accumulates readings per channel.
// All channels grow together, so every channel always has Len() samples.
// A Series is owned by one run; it is not safe for concurrent use.
type Series struct {
	values [ChannelCount][]float32
}

// NewSeries preallocates room for n samples per channel.
func NewSeries(n int) *Series {
	s := &Series{}
	for i := range s.values {
		s.values[i] = make([]float32, 0, n)
	}
	return s
}

// Append commits one reading to every channel.
func (s *Series) Append(r Reading) {
	for i, v := range r {
		s.values[i] = append(s.values[i], v)
	}
}

// Len returns the number of committed samples (identical for every channel).
func (s *Series) Len() int {
	return len(s.values[0])
}

// Values returns a copy of the samples recorded for ch.
func (s *Series) Values(ch Channel) []float32 {
	i := ch.Index()
	if i < 0 {
		return nil
	}
	out := make([]float32, len(s.values[i]))
	copy(out, s.values[i])
	return out
}

// Summary reduces every channel to its maximum.
// NaN samples are skipped; a channel with no other sample stays NaN.
func (s *Series) Summary() (Summary, error) {
	var sum Summary

	if s.Len() == 0 {
		return sum, ErrEmptySeries
	}

	for i, vals := range s.values {
		hi := float32(math.NaN())
		for _, v := range vals {
			if isNaN(v) {
				continue
			}
			if isNaN(hi) || v > hi {
				hi = v
			}
		}
		sum[i] = hi
	}

	return sum, nil
}

func isNaN(v float32) bool {
	return v != v
}
