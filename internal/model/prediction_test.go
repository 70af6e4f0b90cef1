package model

import "testing"

func TestPredictionResponse_Best(t *testing.T) {
	tests := []struct {
		name     string
		items    PredictionResponse
		expected string
	}{
		{
			name:     "single item",
			items:    PredictionResponse{{ClassName: "apple", Probability: 0.42}},
			expected: "apple",
		},
		{
			name: "highest wins",
			items: PredictionResponse{
				{ClassName: "Cat", Probability: 0.1},
				{ClassName: "Dog", Probability: 0.7},
				{ClassName: "Bird", Probability: 0.2},
			},
			expected: "Dog",
		},
		{
			name: "first of tied maxima wins",
			items: PredictionResponse{
				{ClassName: "Cat", Probability: 0.7},
				{ClassName: "Dog", Probability: 0.9},
				{ClassName: "Bird", Probability: 0.9},
			},
			expected: "Dog",
		},
		{
			name: "all equal keeps first",
			items: PredictionResponse{
				{ClassName: "a", Probability: 0.25},
				{ClassName: "b", Probability: 0.25},
				{ClassName: "c", Probability: 0.25},
			},
			expected: "a",
		},
		{
			name: "maximum at the end",
			items: PredictionResponse{
				{ClassName: "a", Probability: 0},
				{ClassName: "b", Probability: 0.3},
				{ClassName: "c", Probability: 0.31},
			},
			expected: "c",
		},
	}

	for _, test := range tests {
		best, ok := test.items.Best()
		if !ok {
			t.Errorf("%s: Best() returned ok=false", test.name)
			continue
		}
		if best.ClassName != test.expected {
			t.Errorf("%s: Best() = %s, expected %s", test.name, best.ClassName, test.expected)
		}
	}
}

func TestPredictionResponse_BestEmpty(t *testing.T) {
	var empty PredictionResponse
	if _, ok := empty.Best(); ok {
		t.Error("Best() on empty response should return ok=false")
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		probability float64
		expected    string
	}{
		{0.8675, "86.75%"},
		{0.9, "90.00%"},
		{1, "100.00%"},
		{0, "0.00%"},
		{0.123456, "12.35%"},
		{0.00001, "0.00%"},
	}

	for _, test := range tests {
		result := FormatPercent(test.probability)
		if result != test.expected {
			t.Errorf("FormatPercent(%v) = %s, expected %s", test.probability, result, test.expected)
		}
	}
}

func TestPredictionItem_Percent(t *testing.T) {
	item := PredictionItem{ClassName: "Dog", Probability: 0.9}
	if item.Percent() != "90.00%" {
		t.Errorf("Percent() = %s, expected 90.00%%", item.Percent())
	}
}
