package diffpane

// SegmentKind discriminates visible and hidden segments.
type SegmentKind int

// Segment kinds.
const (
	SegmentVisible SegmentKind = iota
	SegmentHidden
)

// Segment is a contiguous range of pane rows [Start, End) that is either
// rendered or summarized as hidden.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Start int         `json:"start"`
	End   int         `json:"end"`
}

// Visible returns a visible segment over rows [start, end).
func Visible(start, end int) Segment {
	return Segment{Kind: SegmentVisible, Start: start, End: end}
}

// Hidden returns a hidden segment over rows [start, end).
func Hidden(start, end int) Segment {
	return Segment{Kind: SegmentHidden, Start: start, End: end}
}

// Count returns the number of rows in the segment.
func (s Segment) Count() int {
	return s.End - s.Start
}

// VisibilityPlan partitions each pane's rows into visible and hidden segments.
type VisibilityPlan struct {
	Old []Segment `json:"old"`
	New []Segment `json:"new"`
}

// PlanVisibility computes, independently for each pane, which rows stay
// visible when unchanged context is collapsed. Every row within contextLines
// of a changed row is visible; the rest is grouped into hidden segments.
// A negative contextLines is treated as 0.
func PlanVisibility(oldPane, newPane *Pane, contextLines int) VisibilityPlan {
	return VisibilityPlan{
		Old: planPane(oldPane, contextLines),
		New: planPane(newPane, contextLines),
	}
}

// Segments returns the plan for side s.
func (p VisibilityPlan) Segments(s Side) []Segment {
	if s == Right {
		return p.New
	}
	return p.Old
}

func planPane(pane *Pane, contextLines int) []Segment {
	n := pane.Len()
	if n == 0 {
		return nil
	}
	// A window wider than the pane covers all of it.
	contextLines = min(max(contextLines, 0), n)

	// Mark coverage with a difference array so overlapping windows merge.
	cover := make([]int, n+1)
	for i, line := range pane.Lines {
		if line.Type == Unchanged || line.Type == Imaginary {
			continue
		}
		lo := max(i-contextLines, 0)
		hi := min(i+contextLines+1, n)
		cover[lo]++
		cover[hi]--
	}

	var segments []Segment
	depth := 0
	for i := 0; i < n; i++ {
		depth += cover[i]
		kind := SegmentHidden
		if depth > 0 {
			kind = SegmentVisible
		}
		if last := len(segments) - 1; last >= 0 && segments[last].Kind == kind {
			segments[last].End = i + 1
			continue
		}
		segments = append(segments, Segment{Kind: kind, Start: i, End: i + 1})
	}
	return segments
}
