// Package policy resolves which registered algorithm handles a request
// when the caller does not name one explicitly.
package policy

import (
	"math/rand"
	"time"

	"github.com/samber/lo"

	"predict-lab/domain"
)

// Rand abstracts the randomness source so weighted selection stays
// replayable under test.
type Rand interface {
	Float64() float64
}

// Selector evaluates an AlgorithmPolicy against the algorithm ids
// currently registered. Stateless apart from its randomness source;
// every call re-evaluates from scratch.
type Selector struct {
	rand Rand
}

func NewSelector(r Rand) Selector {
	return Selector{rand: r}
}

// DefaultRand returns a time-seeded source for production wiring.
func DefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Select returns the chosen algorithm id, or ok=false when the policy
// yields nothing. A default pointing at a deleted algorithm and a
// weighted policy with an empty intersection both yield nothing, never
// an error: the dispatcher maps that to "no algorithm available".
func (s Selector) Select(p domain.AlgorithmPolicy, available []string) (string, bool) {
	switch p.Kind {
	case domain.PolicyDefault:
		if lo.Contains(available, p.DefaultID) {
			return p.DefaultID, true
		}
		return "", false
	case domain.PolicyWeighted:
		return s.selectWeighted(p.Weights, available)
	default:
		// PolicyNone and anything unrecognized select nothing.
		return "", false
	}
}

// selectWeighted draws one id with probability proportional to its
// weight among ids present both in the policy and in available.
// The draw is uniform over the cumulative weight sum; declaration
// order breaks ties.
func (s Selector) selectWeighted(weights []domain.AlgorithmWeight, available []string) (string, bool) {
	eligible := lo.Filter(weights, func(w domain.AlgorithmWeight, _ int) bool {
		return w.Weight > 0 && lo.Contains(available, w.AlgorithmID)
	})
	if len(eligible) == 0 {
		return "", false
	}

	var total float64
	for _, w := range eligible {
		total += w.Weight
	}

	draw := s.rand.Float64() * total
	var cumulative float64
	for _, w := range eligible {
		cumulative += w.Weight
		if draw < cumulative {
			return w.AlgorithmID, true
		}
	}
	// Floating point edge: draw landed exactly on the total.
	return eligible[len(eligible)-1].AlgorithmID, true
}
