package model

import "testing"

func TestSubmissionStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   SubmissionStatus
		expected bool
	}{
		{SubmissionStatusIdle, false},
		{SubmissionStatusValidating, true},
		{SubmissionStatusSending, true},
		{SubmissionStatusParsing, true},
		{SubmissionStatusRendered, false},
		{SubmissionStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("SubmissionStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSubmissionStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SubmissionStatus
		expected bool
	}{
		{SubmissionStatusIdle, false},
		{SubmissionStatusValidating, false},
		{SubmissionStatusSending, false},
		{SubmissionStatusParsing, false},
		{SubmissionStatusRendered, true},
		{SubmissionStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SubmissionStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSubmissionStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from     SubmissionStatus
		to       SubmissionStatus
		expected bool
	}{
		{SubmissionStatusIdle, SubmissionStatusValidating, true},
		{SubmissionStatusIdle, SubmissionStatusSending, false},
		{SubmissionStatusIdle, SubmissionStatusError, false},
		{SubmissionStatusValidating, SubmissionStatusSending, true},
		{SubmissionStatusValidating, SubmissionStatusError, true},
		{SubmissionStatusValidating, SubmissionStatusRendered, false},
		{SubmissionStatusSending, SubmissionStatusParsing, true},
		{SubmissionStatusSending, SubmissionStatusError, true},
		{SubmissionStatusParsing, SubmissionStatusRendered, true},
		{SubmissionStatusParsing, SubmissionStatusError, true},
		{SubmissionStatusRendered, SubmissionStatusValidating, false},
		{SubmissionStatusError, SubmissionStatusValidating, false},
		{SubmissionStatusError, SubmissionStatusError, false},
	}

	for _, test := range tests {
		result := test.from.CanTransition(test.to)
		if result != test.expected {
			t.Errorf("%s.CanTransition(%s) = %v, expected %v", test.from, test.to, result, test.expected)
		}
	}
}

func TestSubmissionStatus_String(t *testing.T) {
	status := SubmissionStatusSending
	expected := "Sending"
	result := status.String()

	if result != expected {
		t.Errorf("SubmissionStatus.String() = %s, expected %s", result, expected)
	}
}
