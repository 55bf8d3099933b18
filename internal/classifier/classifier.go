// Package classifier turns an audio clip into FGC predictions.
//
// The only implementation today is Mock, which draws its answer at random
// from the taxonomy. A real model must keep the same output shape:
// confidences in [0,1], predictions sorted descending and alternatives taken
// from the primary's category.
package classifier

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"meowscope/internal/taxonomy"
)

const (
	minConfidence   = 0.85
	maxConfidence   = 0.99
	minAltFactor    = 0.3
	maxAltFactor    = 0.6
	maxAlternatives = 2
)

// Prediction is a class paired with its confidence.
type Prediction struct {
	Class      taxonomy.FGCClass `json:"class"`
	Confidence float64           `json:"confidence"`
}

// Result is the output of a classification.
type Result struct {
	Primary    taxonomy.FGCClass
	Confidence float64
	// Predictions holds the primary and its alternatives sorted by descending confidence.
	Predictions []Prediction
}

// Alternatives returns every prediction except the first occurrence of the primary.
func (r Result) Alternatives() []Prediction {
	out := make([]Prediction, 0, len(r.Predictions))
	skipped := false
	for _, p := range r.Predictions {
		if !skipped && p.Class.Code == r.Primary.Code && p.Confidence == r.Confidence {
			skipped = true
			continue
		}
		out = append(out, p)
	}
	return out
}

// Classifier produces predictions for an audio payload.
type Classifier interface {
	Classify(audio []byte) Result
}

// Mock ignores the audio and samples the taxonomy.
type Mock struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMock returns a Mock driven by rng. A nil rng is seeded from the clock.
func NewMock(rng *rand.Rand) *Mock {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Mock{rng: rng}
}

// Classify draws a primary class uniformly, a confidence in [0.85, 0.99] and
// up to two alternatives from the same category. Alternatives are sampled
// with replacement, so the same alternative may appear twice.
func (m *Mock) Classify(_ []byte) Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	primary := taxonomy.At(m.rng.IntN(taxonomy.Len()))
	confidence := minConfidence + m.rng.Float64()*(maxConfidence-minConfidence)

	predictions := []Prediction{{Class: primary, Confidence: confidence}}

	var siblings []taxonomy.FGCClass
	for _, c := range taxonomy.ByCategory(primary.Category) {
		if c.Code != primary.Code {
			siblings = append(siblings, c)
		}
	}

	for i := 0; i < min(maxAlternatives, len(siblings)); i++ {
		alt := siblings[m.rng.IntN(len(siblings))]
		factor := minAltFactor + m.rng.Float64()*(maxAltFactor-minAltFactor)
		predictions = append(predictions, Prediction{Class: alt, Confidence: confidence * factor})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	return Result{Primary: primary, Confidence: confidence, Predictions: predictions}
}
