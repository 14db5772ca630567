package core

// Derived figures the caller renders but never sends back to the server.

// GoalProgress returns the saved/target ratio clamped to [0, 1].
// A goal may be overfunded; progress still caps at 1.
func GoalProgress(saved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clamp01(saved / target)
}

// CategoryShare returns one category's share of total spending, clamped
// to [0, 1]. A non-positive total yields 0.
func CategoryShare(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clamp01(amount / total)
}

// MarketValue returns the current value of a holding.
func MarketValue(quantity, currentPrice float64) float64 {
	return quantity * currentPrice
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
