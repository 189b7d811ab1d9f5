package grid

// IsBlocked reports whether an action without Through capability is stopped
// before reaching anchor by living occupants standing in front of it.
// Only anchors in the formation opposite the actor can be blocked. The rule
// is stated for the near formation, whose Right column faces the far side;
// far anchors are reflected into that frame first.
func IsBlocked(anchor int, through bool, actor Side, occupied func(pos int) bool) bool {
	if through || !Valid(anchor) || SideOf(anchor) == actor {
		return false
	}
	at := occupied
	if SideOf(anchor) == Far {
		anchor = Reflect(anchor)
		at = func(pos int) bool { return occupied(Reflect(pos)) }
	}
	local := Local(anchor)
	row := RowOf(local)
	switch ColumnOf(local) {
	case Left:
		return at(cellAt(row, CenterCol)) || at(cellAt(row, Right))
	case CenterCol:
		return at(cellAt(row, Right))
	}
	return false
}

// Resolve returns the positions an action reaches when aimed at anchor.
// A blocked anchor reaches nothing.
func Resolve(t Template, anchor int, actor Side, occupied func(pos int) bool) ([]int, error) {
	if IsBlocked(anchor, t.Through, actor, occupied) {
		return nil, nil
	}
	return Translate(t, anchor, PerspectiveFor(actor))
}
