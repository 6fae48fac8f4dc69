package client

// ComputeRating scores a client from scratch out of its loan history.
// Ratios are 0 when the client has no loans.
func ComputeRating(s Standing) float64 {
	var paidRatio, delinquentRatio float64
	if s.TotalLoans > 0 {
		paidRatio = float64(s.PaidLoans) / float64(s.TotalLoans)
		delinquentRatio = float64(s.DelinquentLoans) / float64(s.TotalLoans)
	}

	rating := DefaultRating
	switch {
	case paidRatio > 0.8:
		rating += 2.5
	case paidRatio > 0.6:
		rating += 1.5
	case paidRatio > 0.4:
		rating += 0.5
	}

	switch {
	case delinquentRatio > 0.2:
		rating -= 2.0
	case delinquentRatio > 0.1:
		rating -= 1.0
	}

	return clamp(rating, MinRating, MaxRating)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
