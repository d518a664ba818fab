package diffpane

import "fmt"

// Stats holds additive change counters across both panes of a diff.
type Stats struct {
	LineAdditions     int `json:"line_additions"`
	LineModifications int `json:"line_modifications"`
	LineDeletions     int `json:"line_deletions"`
	WordAdditions     int `json:"word_additions"`
	WordModifications int `json:"word_modifications"`
	WordDeletions     int `json:"word_deletions"`
}

// ComputeStats aggregates change counts over both panes. Additions and
// modifications are read from the new pane, deletions from the old one.
// A nil pane contributes nothing.
func ComputeStats(oldPane, newPane *Pane) Stats {
	var s Stats
	if newPane != nil {
		for _, line := range newPane.Lines {
			switch line.Type {
			case Inserted:
				s.LineAdditions++
			case Modified:
				s.LineModifications++
			}
			for _, sub := range line.SubPieces {
				switch sub.Type {
				case Inserted:
					s.WordAdditions++
				case Modified:
					s.WordModifications++
				}
			}
		}
	}
	if oldPane != nil {
		for _, line := range oldPane.Lines {
			if line.Type == Deleted {
				s.LineDeletions++
			}
			for _, sub := range line.SubPieces {
				if sub.Type == Deleted {
					s.WordDeletions++
				}
			}
		}
	}
	return s
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		LineAdditions:     s.LineAdditions + o.LineAdditions,
		LineModifications: s.LineModifications + o.LineModifications,
		LineDeletions:     s.LineDeletions + o.LineDeletions,
		WordAdditions:     s.WordAdditions + o.WordAdditions,
		WordModifications: s.WordModifications + o.WordModifications,
		WordDeletions:     s.WordDeletions + o.WordDeletions,
	}
}

// IsZero reports whether no change was counted.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// String formats the stats for a header line.
// Format: "lines +1 ~2 -3, words +4 ~5 -6"
func (s Stats) String() string {
	return fmt.Sprintf("lines +%d ~%d -%d, words +%d ~%d -%d",
		s.LineAdditions, s.LineModifications, s.LineDeletions,
		s.WordAdditions, s.WordModifications, s.WordDeletions)
}
