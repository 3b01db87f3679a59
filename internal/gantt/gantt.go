// Package gantt computes chart geometry for a project hierarchy: a padded
// day-aligned timeline, one row of bar rectangles per visible node, and due
// date markers. It is pure layout; it never touches storage and never fails.
// Rows with missing or inverted dates simply get no bar.
package gantt

import (
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

// Config holds the sizing constants for a layout pass. Units are abstract:
// the HTTP layer hands out CSS pixels, the terminal renderer uses cells.
type Config struct {
	// DayWidth is the horizontal extent of one calendar day.
	DayWidth float64
	// RowHeight and RowGap drive the uniform vertical fallback used when no
	// measured rectangle is available for a row. RowHeight must match the
	// sidebar's real rendered row height or bars drift from their labels.
	RowHeight float64
	RowGap    float64
	// PadBefore and PadAfter widen the scanned date range, in days.
	PadBefore int
	PadAfter  int
}

// DefaultConfig returns the sizing used by the web chart.
func DefaultConfig() Config {
	return Config{
		DayWidth:  24,
		RowHeight: 32,
		RowGap:    4,
		PadBefore: 3,
		PadAfter:  7,
	}
}

// Kind tags the hierarchy level a row came from.
type Kind string

const (
	KindPhase Kind = "phase"
	KindWork  Kind = "work"
	KindTask  Kind = "task"
)

// Rect is a vertical slot for one row.
type Rect struct {
	Top    float64
	Height float64
}

// Bar is a horizontal span within a row.
type Bar struct {
	Left  float64
	Width float64
}

// Marker is a due-date point, vertically centered on its owning task's row.
type Marker struct {
	TodoID string
	Title  string
	X      float64
	Y      float64
	Done   bool
}

// Row is one visible line of the chart.
type Row struct {
	NodeID      string
	Kind        Kind
	Depth       int
	Title       string
	Status      domain.Status
	Progress    int
	HasChildren bool
	Collapsed   bool
	Rect        Rect
	Planned     *Bar
	Actual      *Bar
	Markers     []Marker
}

// Input is everything one layout pass needs. Collapsed holds node ids whose
// descendants are hidden; Measured holds real row rectangles keyed by node id
// when the host UI has them, and may be nil.
type Input struct {
	Phases    []view.PhaseNode
	Collapsed map[string]bool
	Measured  map[string]Rect
	Now       time.Time
}

// Layout is the computed chart geometry.
type Layout struct {
	MinStart time.Time
	MaxEnd   time.Time
	Width    float64
	Height   float64
	Rows     []Row
}

// Days returns the number of calendar days spanned by the timeline.
func (l Layout) Days() int {
	return int(l.MaxEnd.Sub(l.MinStart).Hours() / 24)
}

// visibleRow is a flattened node before geometry is attached.
type visibleRow struct {
	nodeID       string
	kind         Kind
	depth        int
	title        string
	status       domain.Status
	progress     int
	hasChildren  bool
	collapsed    bool
	plannedStart *time.Time
	plannedEnd   *time.Time
	actualStart  *time.Time
	actualEnd    *time.Time
	todos        []view.TodoNode
}

// Compute runs one full layout pass. It always succeeds: an empty or
// dateless tree yields a minimal timeline around Now with barless rows.
func Compute(in Input, cfg Config) Layout {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	rows := flatten(in.Phases, in.Collapsed)
	minStart, maxEnd := timelineBounds(rows, now, cfg)

	out := Layout{
		MinStart: minStart,
		MaxEnd:   maxEnd,
		Width:    float64(daysBetween(minStart, maxEnd)) * cfg.DayWidth,
		Rows:     make([]Row, 0, len(rows)),
	}

	for i, vr := range rows {
		rect := rowRect(in.Measured, vr.nodeID, i, cfg)

		row := Row{
			NodeID:      vr.nodeID,
			Kind:        vr.kind,
			Depth:       vr.depth,
			Title:       vr.title,
			Status:      vr.status,
			Progress:    vr.progress,
			HasChildren: vr.hasChildren,
			Collapsed:   vr.collapsed,
			Rect:        rect,
			Planned:     spanBar(vr.plannedStart, vr.plannedEnd, minStart, cfg),
			Actual:      actualBar(vr.actualStart, vr.actualEnd, now, minStart, cfg),
		}

		for _, td := range vr.todos {
			due := parseDay(td.DueDate)
			if due == nil {
				continue
			}
			row.Markers = append(row.Markers, Marker{
				TodoID: td.ID,
				Title:  td.Title,
				X:      dayX(*due, minStart, cfg) + cfg.DayWidth/2,
				Y:      rect.Top + rect.Height/2,
				Done:   td.Status == domain.StatusDone,
			})
		}

		bottom := rect.Top + rect.Height
		if bottom > out.Height {
			out.Height = bottom
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// flatten walks the tree top-down in order-index order, dropping everything
// below a collapsed node. Todos never become rows; they ride along on their
// task for marker placement.
func flatten(phases []view.PhaseNode, collapsed map[string]bool) []visibleRow {
	var rows []visibleRow
	for _, p := range phases {
		pc := collapsed[p.ID]
		rows = append(rows, visibleRow{
			nodeID:       p.ID,
			kind:         KindPhase,
			depth:        0,
			title:        p.Title,
			status:       p.Status,
			progress:     p.Progress,
			hasChildren:  len(p.Works) > 0,
			collapsed:    pc,
			plannedStart: parseDay(p.PlannedStart),
			plannedEnd:   parseDay(p.PlannedEnd),
			actualStart:  parseDay(p.ActualStart),
			actualEnd:    parseDay(p.ActualEnd),
		})
		if pc {
			continue
		}
		for _, w := range p.Works {
			wc := collapsed[w.ID]
			rows = append(rows, visibleRow{
				nodeID:       w.ID,
				kind:         KindWork,
				depth:        1,
				title:        w.Title,
				status:       w.Status,
				progress:     w.Progress,
				hasChildren:  len(w.Tasks) > 0,
				collapsed:    wc,
				plannedStart: parseDay(w.PlannedStart),
				plannedEnd:   parseDay(w.PlannedEnd),
				actualStart:  parseDay(w.ActualStart),
				actualEnd:    parseDay(w.ActualEnd),
			})
			if wc {
				continue
			}
			for _, task := range w.Tasks {
				rows = append(rows, visibleRow{
					nodeID:       task.ID,
					kind:         KindTask,
					depth:        2,
					title:        task.Title,
					status:       task.Status,
					progress:     task.Progress,
					hasChildren:  len(task.Todos) > 0,
					plannedStart: parseDay(task.PlannedStart),
					plannedEnd:   parseDay(task.PlannedEnd),
					actualStart:  parseDay(task.ActualStart),
					actualEnd:    parseDay(task.ActualEnd),
					todos:        task.Todos,
				})
			}
		}
	}
	return rows
}

// timelineBounds scans every visible row's dates plus due dates, pads the
// result and snaps it to day boundaries. Collapsed branches are already gone
// from rows, so collapsing genuinely changes the computed bounds. An
// in-progress row contributes "now" because its actual bar runs to now.
func timelineBounds(rows []visibleRow, now time.Time, cfg Config) (time.Time, time.Time) {
	var min, max *time.Time

	grow := func(t *time.Time) {
		if t == nil {
			return
		}
		if min == nil || t.Before(*min) {
			min = t
		}
		if max == nil || t.After(*max) {
			max = t
		}
	}

	for _, vr := range rows {
		grow(vr.plannedStart)
		grow(vr.plannedEnd)
		grow(vr.actualStart)
		grow(vr.actualEnd)
		if vr.actualStart != nil && vr.actualEnd == nil {
			n := now
			grow(&n)
		}
		for _, td := range vr.todos {
			grow(parseDay(td.DueDate))
		}
	}

	if min == nil {
		n := now
		min, max = &n, &n
	}

	start := snapToDay(*min).AddDate(0, 0, -cfg.PadBefore)
	end := snapToDay(*max).AddDate(0, 0, cfg.PadAfter+1)
	return start, end
}

// spanBar builds a bar covering [start, end] inclusive of the end day.
// Either date missing, or end before start, suppresses the bar.
func spanBar(start, end *time.Time, minStart time.Time, cfg Config) *Bar {
	if start == nil || end == nil || end.Before(*start) {
		return nil
	}
	left := dayX(*start, minStart, cfg)
	right := dayX(end.AddDate(0, 0, 1), minStart, cfg)
	return &Bar{Left: left, Width: right - left}
}

// actualBar is spanBar with the in-progress rule: a started, unfinished row
// extends to now.
func actualBar(start, end *time.Time, now, minStart time.Time, cfg Config) *Bar {
	if start == nil {
		return nil
	}
	if end == nil {
		day := snapToDay(now)
		end = &day
	}
	return spanBar(start, end, minStart, cfg)
}

func rowRect(measured map[string]Rect, nodeID string, index int, cfg Config) Rect {
	if r, ok := measured[nodeID]; ok {
		return r
	}
	return Rect{
		Top:    float64(index) * (cfg.RowHeight + cfg.RowGap),
		Height: cfg.RowHeight,
	}
}

func dayX(t, minStart time.Time, cfg Config) float64 {
	return t.Sub(minStart).Hours() / 24 * cfg.DayWidth
}

func parseDay(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func snapToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
