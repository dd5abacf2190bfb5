package domain

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReady, false},
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, testCase := range tests {
		got := testCase.from.CanTransitionTo(testCase.to)
		if got != testCase.allowed {
			t.Errorf("%s -> %s: got %v, want %v", testCase.from, testCase.to, got, testCase.allowed)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("cancelled should be terminal")
	}
	if StatusPending.Terminal() {
		t.Error("pending should not be terminal")
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusPreparing.Valid() {
		t.Error("preparing should be valid")
	}
	if OrderStatus("shipped").Valid() {
		t.Error("shipped should not be valid")
	}
}
