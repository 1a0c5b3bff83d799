package policy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"predict-lab/domain"
)

// fixedRand replays a scripted sequence of draws.
type fixedRand struct {
	draws []float64
	pos   int
}

func (f *fixedRand) Float64() float64 {
	d := f.draws[f.pos%len(f.draws)]
	f.pos++
	return d
}

func TestSelect_NonePolicy(t *testing.T) {
	req := require.New(t)
	selector := NewSelector(&fixedRand{draws: []float64{0.5}})

	_, ok := selector.Select(domain.AlgorithmPolicy{Kind: domain.PolicyNone}, []string{"a", "b"})
	req.False(ok)

	_, ok = selector.Select(domain.AlgorithmPolicy{Kind: domain.PolicyNone}, nil)
	req.False(ok)
}

func TestSelect_DefaultPolicy(t *testing.T) {
	req := require.New(t)
	selector := NewSelector(&fixedRand{draws: []float64{0.5}})
	policy := domain.AlgorithmPolicy{Kind: domain.PolicyDefault, DefaultID: "a"}

	id, ok := selector.Select(policy, []string{"a", "b"})
	req.True(ok)
	req.Equal("a", id)

	// The default may have been deleted after the policy was set.
	_, ok = selector.Select(policy, []string{"b", "c"})
	req.False(ok)
}

func TestSelect_WeightedDeterministicDraws(t *testing.T) {
	req := require.New(t)
	policy := domain.AlgorithmPolicy{
		Kind: domain.PolicyWeighted,
		Weights: []domain.AlgorithmWeight{
			{AlgorithmID: "a", Weight: 3},
			{AlgorithmID: "b", Weight: 1},
		},
	}
	available := []string{"a", "b"}

	// Cumulative bounds: a covers [0, 3), b covers [3, 4).
	tests := []struct {
		draw float64
		want string
	}{
		{0.0, "a"},
		{0.74, "a"},
		{0.75, "b"},
		{0.999, "b"},
	}
	for _, tt := range tests {
		selector := NewSelector(&fixedRand{draws: []float64{tt.draw}})
		id, ok := selector.Select(policy, available)
		req.True(ok)
		req.Equal(tt.want, id, "draw %v", tt.draw)
	}
}

func TestSelect_WeightedEmptyIntersection(t *testing.T) {
	req := require.New(t)
	selector := NewSelector(&fixedRand{draws: []float64{0.1}})
	policy := domain.AlgorithmPolicy{
		Kind: domain.PolicyWeighted,
		Weights: []domain.AlgorithmWeight{
			{AlgorithmID: "gone", Weight: 2},
		},
	}

	_, ok := selector.Select(policy, []string{"a", "b"})
	req.False(ok)

	_, ok = selector.Select(policy, nil)
	req.False(ok)
}

func TestSelect_WeightedRestrictsToAvailable(t *testing.T) {
	req := require.New(t)
	policy := domain.AlgorithmPolicy{
		Kind: domain.PolicyWeighted,
		Weights: []domain.AlgorithmWeight{
			{AlgorithmID: "a", Weight: 100},
			{AlgorithmID: "b", Weight: 1},
		},
	}

	// With a unavailable, every draw lands on b.
	selector := NewSelector(&fixedRand{draws: []float64{0.01, 0.5, 0.99}})
	for i := 0; i < 3; i++ {
		id, ok := selector.Select(policy, []string{"b"})
		req.True(ok)
		req.Equal("b", id)
	}
}

func TestSelect_WeightedEmpiricalRatio(t *testing.T) {
	req := require.New(t)
	selector := NewSelector(rand.New(rand.NewSource(42)))
	policy := domain.AlgorithmPolicy{
		Kind: domain.PolicyWeighted,
		Weights: []domain.AlgorithmWeight{
			{AlgorithmID: "a", Weight: 3},
			{AlgorithmID: "b", Weight: 1},
		},
	}
	available := []string{"a", "b"}

	const draws = 10000
	var hitsA int
	for i := 0; i < draws; i++ {
		id, ok := selector.Select(policy, available)
		req.True(ok)
		if id == "a" {
			hitsA++
		}
	}

	ratio := float64(hitsA) / float64(draws)
	req.InDelta(0.75, ratio, 0.02)
}
