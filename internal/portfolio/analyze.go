package portfolio

// SeriesStats summarizes one metric across the performance records.
type SeriesStats struct {
	Name  string
	Min   float64
	Max   float64
	Mean  float64
	First float64
	Last  float64
	Delta float64 // last minus previous record, zero with fewer than two records
}

// Trends holds the statistics for each charted series.
type Trends struct {
	DefaultRate  SeriesStats
	ApprovalRate SeriesStats
	AvgRiskScore SeriesStats
}

// Series returns the three series in chart order.
func (t Trends) Series() []SeriesStats {
	return []SeriesStats{t.DefaultRate, t.ApprovalRate, t.AvgRiskScore}
}

// Analyze computes per-series statistics for display.
func Analyze(records []PerformanceRecord) Trends {
	defaults, approvals, scores := Values(records)
	return Trends{
		DefaultRate:  seriesStats("Default Rate %", defaults),
		ApprovalRate: seriesStats("Approval Rate %", approvals),
		AvgRiskScore: seriesStats("Avg Risk Score", scores),
	}
}

// Values extracts the three series as float slices (default, approval, score).
func Values(records []PerformanceRecord) (defaults, approvals, scores []float64) {
	defaults = make([]float64, len(records))
	approvals = make([]float64, len(records))
	scores = make([]float64, len(records))
	for i, r := range records {
		defaults[i] = r.DefaultRate
		approvals[i] = r.ApprovalRate
		scores[i] = float64(r.AvgRiskScore)
	}
	return defaults, approvals, scores
}

// Months returns the month labels in record order.
func Months(records []PerformanceRecord) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Month
	}
	return labels
}

func seriesStats(name string, values []float64) SeriesStats {
	s := SeriesStats{Name: name}
	if len(values) == 0 {
		return s
	}

	s.Min, s.Max = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(values))
	s.First = values[0]
	s.Last = values[len(values)-1]
	if len(values) > 1 {
		s.Delta = s.Last - values[len(values)-2]
	}
	return s
}
