package goldbach

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when N is odd or not greater than 2.
var ErrInvalidArgument = errors.New("invalid argument")

// Partition is one qualifying Goldbach pair (K, N-K) and its contribution to D(N).
type Partition struct {
	K          int     `json:"k"`
	Complement int     `json:"complement"`
	Offset     float64 `json:"offset"`
	Weight     float64 `json:"weight"`
}

// Result captures the output of a single D(N) evaluation.
type Result struct {
	N     int     `json:"n"`
	Value float64 `json:"value"`
	Pairs int     `json:"pairs"`
}

func validate(n int) error {
	if n%2 != 0 || n <= 2 {
		return fmt.Errorf("%w: N must be even and > 2 (got %d)", ErrInvalidArgument, n)
	}
	return nil
}

// Weight returns the Gaussian weight of k for N:
//
//	exp(-(k - N/2)² / (2N))
//
// The result lies in (0, 1] for any k within [2, N-2].
func Weight(n, k int) float64 {
	d := float64(k) - float64(n)/2
	return math.Exp(-(d * d) / float64(2*n))
}

// Partitions lists every ordered pair (k, N-k) with both members prime, for k
// ascending over [2, N-2]. Symmetric pairs appear twice unless k == N-k.
func Partitions(n int) ([]Partition, error) {
	if err := validate(n); err != nil {
		return nil, err
	}

	center := float64(n) / 2
	var out []Partition
	for k := 2; k <= n-2; k++ {
		if !IsPrime(k) || !IsPrime(n-k) {
			continue
		}
		out = append(out, Partition{
			K:          k,
			Complement: n - k,
			Offset:     float64(k) - center,
			Weight:     Weight(n, k),
		})
	}
	return out, nil
}

// D computes the weighted Goldbach sum for N. It fails with ErrInvalidArgument
// when N is odd or N <= 2, and returns 0.0 when no pair qualifies.
func D(n int) (float64, error) {
	parts, err := Partitions(n)
	if err != nil {
		return 0, err
	}
	return sum(parts), nil
}

// Evaluate computes D(N) together with the number of qualifying pairs.
func Evaluate(n int) (Result, error) {
	parts, err := Partitions(n)
	if err != nil {
		return Result{}, err
	}
	return Result{N: n, Value: sum(parts), Pairs: len(parts)}, nil
}

func sum(parts []Partition) float64 {
	total := 0.0
	for _, p := range parts {
		total += p.Weight
	}
	return total
}
