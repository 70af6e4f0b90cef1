package mockserver

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"

	"github.com/ytget/image-predictor/internal/model"
)

// DefaultTopK is the number of classes returned per prediction
const DefaultTopK = 5

// Classifier produces repeatable pseudo-predictions over a synset
type Classifier struct {
	classes []string
	topK    int
}

// NewClassifier creates a classifier; topK <= 0 uses DefaultTopK
func NewClassifier(classes []string, topK int) *Classifier {
	if len(classes) == 0 {
		classes = DefaultSynset
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > len(classes) {
		topK = len(classes)
	}
	return &Classifier{classes: classes, topK: topK}
}

// Classify scores every class from a seed derived from data, applies softmax
// and returns the topK items sorted by probability, highest first.
func (c *Classifier) Classify(data []byte) model.PredictionResponse {
	h := fnv.New64a()
	h.Write(data)
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	logits := make([]float64, len(c.classes))
	maxLogit := math.Inf(-1)
	for i := range logits {
		logits[i] = rng.NormFloat64() * 2
		if logits[i] > maxLogit {
			maxLogit = logits[i]
		}
	}

	var sum float64
	for i, l := range logits {
		logits[i] = math.Exp(l - maxLogit)
		sum += logits[i]
	}

	items := make(model.PredictionResponse, len(c.classes))
	for i, class := range c.classes {
		items[i] = model.PredictionItem{ClassName: class, Probability: logits[i] / sum}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Probability > items[j].Probability
	})
	return items[:c.topK]
}
