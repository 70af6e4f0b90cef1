package model

import (
	"strconv"
)

// PredictionItem is a single class/probability pair returned by the prediction endpoint
type PredictionItem struct {
	ClassName   string  `json:"className"`
	Probability float64 `json:"probability"` // 0.0 to 1.0
}

// PredictionResponse is the ordered list of items returned for one image.
// A valid response always contains at least one item.
type PredictionResponse []PredictionItem

// Best returns the item with the highest probability. On ties the earliest
// item wins: later items only replace the running maximum when strictly greater.
func (r PredictionResponse) Best() (PredictionItem, bool) {
	if len(r) == 0 {
		return PredictionItem{}, false
	}

	best := r[0]
	for _, item := range r[1:] {
		if item.Probability > best.Probability {
			best = item
		}
	}
	return best, true
}

// Percent returns the probability as a percentage with two decimals, e.g. "86.75%"
func (p PredictionItem) Percent() string {
	return FormatPercent(p.Probability)
}

// FormatPercent renders a 0..1 probability as a percentage with exactly two
// decimals. The decimal separator is always '.', independent of locale.
func FormatPercent(probability float64) string {
	return strconv.FormatFloat(probability*100, 'f', 2, 64) + "%"
}
