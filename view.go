package diffpane

import (
	"fmt"
	"strconv"
)

// NonBreakingSpace is the position label of rows without a source line.
const NonBreakingSpace = "\u00a0"

// RowKind discriminates line rows and hidden-summary rows.
type RowKind int

// Row kinds.
const (
	RowLine RowKind = iota
	RowHidden
)

// String returns "line" or "hidden".
func (k RowKind) String() string {
	if k == RowHidden {
		return "hidden"
	}
	return "line"
}

// MarshalText implements encoding.TextMarshaler.
func (k RowKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Row is one rendered row of a pane.
type Row struct {
	Kind     RowKind      `json:"kind"`
	Position int          `json:"position,omitempty"` // Line rows: 1-based line number, 0 if absent
	Type     ChangeType   `json:"type"`               // Line rows: the line's change type
	Text     string       `json:"text,omitempty"`     // Line rows: raw line text
	Nodes    []RenderNode `json:"nodes,omitempty"`    // Line rows: span tree
	Hidden   int          `json:"hidden,omitempty"`   // Hidden rows: number of rows summarized
}

// Class returns the line-level class label ("unchanged", "modified", ...).
func (r Row) Class() string {
	return r.Type.String()
}

// PositionLabel returns the line number, or a non-breaking space when the
// row has no source line.
func (r Row) PositionLabel() string {
	if r.Position <= 0 {
		return NonBreakingSpace
	}
	return strconv.Itoa(r.Position)
}

// Summary returns the one-line text shown in place of hidden rows.
func (r Row) Summary() string {
	if r.Hidden == 1 {
		return "1 line hidden"
	}
	return fmt.Sprintf("%d lines hidden", r.Hidden)
}

// PaneView is the renderable model of one pane.
type PaneView struct {
	Side Side  `json:"side"`
	Rows []Row `json:"rows"`
}

// View is the complete render model of a side-by-side diff.
type View struct {
	Stats   Stats    `json:"stats"`
	Options Options  `json:"-"`
	Left    PaneView `json:"left"`
	Right   PaneView `json:"right"`
}

// NewView aggregates statistics, plans visibility when unchanged lines are
// hidden, and builds the span tree of every visible line.
func NewView(sbs SideBySide, opts Options) View {
	v := View{
		Stats:   ComputeStats(sbs.Old, sbs.New),
		Options: opts,
	}

	var plan VisibilityPlan
	if opts.HideUnchangedLines {
		plan = PlanVisibility(sbs.Old, sbs.New, opts.ContextLines)
	} else {
		plan = VisibilityPlan{
			Old: fullyVisible(sbs.Old),
			New: fullyVisible(sbs.New),
		}
	}

	v.Left = buildPaneView(Left, sbs.Old, plan.Old)
	v.Right = buildPaneView(Right, sbs.New, plan.New)
	return v
}

// Pane returns the pane view for side s.
func (v View) Pane(s Side) PaneView {
	if s == Right {
		return v.Right
	}
	return v.Left
}

// Empty reports whether neither pane has any rows.
func (v View) Empty() bool {
	return len(v.Left.Rows) == 0 && len(v.Right.Rows) == 0
}

func fullyVisible(pane *Pane) []Segment {
	if pane.Len() == 0 {
		return nil
	}
	return []Segment{Visible(0, pane.Len())}
}

func buildPaneView(side Side, pane *Pane, segments []Segment) PaneView {
	pv := PaneView{Side: side}
	for _, seg := range segments {
		if seg.Kind == SegmentHidden {
			pv.Rows = append(pv.Rows, Row{Kind: RowHidden, Hidden: seg.Count()})
			continue
		}
		for _, line := range pane.Lines[seg.Start:seg.End] {
			pv.Rows = append(pv.Rows, Row{
				Kind:     RowLine,
				Position: line.Position,
				Type:     line.Type,
				Text:     line.Text,
				Nodes:    LineNodes(line),
			})
		}
	}
	return pv
}
