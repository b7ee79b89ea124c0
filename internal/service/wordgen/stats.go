package wordgen

import "log/slog"

// FilterStats counts draws and rejections during one Generate call.
type FilterStats struct {
	Attempts   int
	Rejections map[Reason]int
}

// NewFilterStats returns statistics with every reason present at zero.
func NewFilterStats() FilterStats {
	rej := make(map[Reason]int, len(AllReasons))
	for _, r := range AllReasons {
		rej[r] = 0
	}
	return FilterStats{Rejections: rej}
}

func (s *FilterStats) record(o Outcome) {
	s.Attempts++
	if !o.Accepted() {
		s.Rejections[o.Reason]++
	}
}

// Rejected returns the total number of rejected draws.
func (s FilterStats) Rejected() int {
	n := 0
	for _, c := range s.Rejections {
		n += c
	}
	return n
}

// LogValue implements slog.LogValuer.
func (s FilterStats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(AllReasons)+1)
	attrs = append(attrs, slog.Int("attempts", s.Attempts))
	for _, r := range AllReasons {
		attrs = append(attrs, slog.Int(string(r), s.Rejections[r]))
	}
	return slog.GroupValue(attrs...)
}
