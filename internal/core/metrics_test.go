package core

import "testing"

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		saved, target, want float64
	}{
		{50, 100, 0.5},
		{150, 100, 1}, // overfunded caps at 1
		{0, 100, 0},
		{-10, 100, 0},
		{50, 0, 0},
	}
	for _, tc := range cases {
		if got := GoalProgress(tc.saved, tc.target); got != tc.want {
			t.Fatalf("GoalProgress(%v, %v) = %v, want %v", tc.saved, tc.target, got, tc.want)
		}
	}
}

func TestCategoryShare(t *testing.T) {
	cases := []struct {
		amount, total, want float64
	}{
		{25, 100, 0.25},
		{120, 100, 1},
		{25, 0, 0},
		{-5, 100, 0},
	}
	for _, tc := range cases {
		if got := CategoryShare(tc.amount, tc.total); got != tc.want {
			t.Fatalf("CategoryShare(%v, %v) = %v, want %v", tc.amount, tc.total, got, tc.want)
		}
	}
}

func TestMarketValue(t *testing.T) {
	if got := MarketValue(3, 150.5); got != 451.5 {
		t.Fatalf("MarketValue = %v, want 451.5", got)
	}
}
