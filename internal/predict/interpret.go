package predict

import (
	"bytes"
	"encoding/json"

	"github.com/ytget/image-predictor/internal/model"
)

// Result is a validated prediction together with the raw text it came from
type Result struct {
	Items model.PredictionResponse
	Raw   string
}

// Best returns the highest-probability item, first-seen on ties
func (r *Result) Best() model.PredictionItem {
	best, _ := r.Items.Best()
	return best
}

// Details returns the whole response indented with two spaces. Member order,
// extra fields and number literals are preserved exactly as received.
func (r *Result) Details() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(r.Raw), "", "  "); err != nil {
		return r.Raw
	}
	return buf.String()
}

// Interpret checks the status, parses the body and validates its shape.
// Nothing is defaulted: any deviation yields a ServerError or MalformedResponseError.
func Interpret(raw *RawResponse) (*Result, error) {
	if !raw.OK() {
		return nil, &ServerError{
			StatusCode: raw.StatusCode,
			StatusText: raw.StatusText,
			Body:       raw.Body,
		}
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw.Body), &decoded); err != nil {
		return nil, &MalformedResponseError{Reason: ReasonInvalidJSON, Body: raw.Body, Err: err}
	}

	items, ok := toItems(decoded)
	if !ok {
		return nil, &MalformedResponseError{Reason: ReasonInvalidShape, Body: raw.Body}
	}

	return &Result{Items: items, Raw: raw.Body}, nil
}

// toItems accepts only a non-empty array whose elements are objects with a
// string className and a numeric probability.
func toItems(decoded any) (model.PredictionResponse, bool) {
	list, ok := decoded.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}

	items := make(model.PredictionResponse, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		className, ok := obj["className"].(string)
		if !ok {
			return nil, false
		}
		probability, ok := obj["probability"].(float64)
		if !ok {
			return nil, false
		}
		items = append(items, model.PredictionItem{ClassName: className, Probability: probability})
	}
	return items, true
}
