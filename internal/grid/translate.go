package grid

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrAnchorOutOfRange = errors.New("anchor out of range")
	ErrCenterOutOfRange = errors.New("template center out of range")
)

// Template is the set of cells an action affects before anchoring.
// Cells are local coordinates relative to Center when Retargetable is set,
// absolute positions otherwise.
type Template struct {
	Cells        []int
	Center       int
	Retargetable bool
	Through      bool
}

// Perspective selects how a template is read. Templates are authored facing
// forward from the near formation; an actor in the far formation reads them
// mirrored.
type Perspective int

const (
	Forward Perspective = iota
	Mirrored
)

func PerspectiveFor(actor Side) Perspective {
	if actor == Far {
		return Mirrored
	}
	return Forward
}

// Translate re-anchors the template on anchor and clips it to the anchor's
// formation. The result is sorted and may be empty.
func Translate(t Template, anchor int, p Perspective) ([]int, error) {
	if !t.Retargetable {
		return append([]int(nil), t.Cells...), nil
	}
	if !Valid(anchor) {
		return nil, fmt.Errorf("%w: %d", ErrAnchorOutOfRange, anchor)
	}
	center := t.Center
	if center == 0 {
		center = DefaultCenter
	}
	if center < 1 || center > FormationSize {
		return nil, fmt.Errorf("%w: %d", ErrCenterOutOfRange, center)
	}

	cells := t.Cells
	if p == Mirrored {
		center = mirrorLocal(center)
		cells = make([]int, len(t.Cells))
		for i, c := range t.Cells {
			cells[i] = mirrorLocal(c)
		}
	}

	formationOffset := anchor / 10
	localAnchor := anchor%10 + formationOffset
	targetOffset := localAnchor - center
	vertical := int(RowOf(localAnchor)) - int(RowOf(center))
	horizontal := targetOffset - vertical*3

	seen := map[int]bool{}
	out := make([]int, 0, len(cells))
	for _, c := range cells {
		if c < 1 || c > FormationSize {
			continue
		}
		if clippedRow(RowOf(c), vertical) || clippedColumn(ColumnOf(c), horizontal) {
			continue
		}
		pos := c + targetOffset + formationOffset*FormationSize
		if seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, pos)
	}
	sort.Ints(out)
	return out, nil
}

// clippedRow reports whether a template row falls off the formation after a
// vertical shift of move rows.
func clippedRow(r Row, move int) bool {
	switch {
	case move >= 1 && r == Bottom:
		return true
	case move <= -1 && r == Top:
		return true
	case (move == 2 || move == -2) && r == Middle:
		return true
	}
	return false
}

func clippedColumn(c Column, move int) bool {
	switch {
	case move >= 1 && c == Right:
		return true
	case move <= -1 && c == Left:
		return true
	case (move == 2 || move == -2) && c == CenterCol:
		return true
	}
	return false
}

func mirrorLocal(local int) int { return FormationSize + 1 - local }
