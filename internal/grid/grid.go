package grid

// Cells is the number of positions on the battlefield: two 3x3 formations.
const (
	Cells         = 18
	FormationSize = 9
	DefaultCenter = 5
)

type Side int

const (
	Near Side = iota // positions 1-9
	Far              // positions 10-18
)

func (s Side) String() string {
	if s == Far {
		return "far"
	}
	return "near"
}

func (s Side) Opposite() Side {
	if s == Far {
		return Near
	}
	return Far
}

type Row int

const (
	Top Row = iota
	Middle
	Bottom
)

type Column int

const (
	Left Column = iota
	CenterCol
	Right
)

func Valid(pos int) bool { return pos >= 1 && pos <= Cells }

func SideOf(pos int) Side {
	if pos <= FormationSize {
		return Near
	}
	return Far
}

// Local maps a global position to 1-9 inside its own formation.
func Local(pos int) int { return pos%10 + pos/10 }

// Global is the inverse of Local for the given side.
func Global(local int, side Side) int {
	if side == Far {
		return local + FormationSize
	}
	return local
}

// Reflect is the point reflection across both formations.
func Reflect(pos int) int { return Cells + 1 - pos }

func RowOf(local int) Row       { return Row((local - 1) / 3) }
func ColumnOf(local int) Column { return Column((local - 1) % 3) }

// cellAt returns the local coordinate of a row/column pair.
func cellAt(r Row, c Column) int { return int(r)*3 + int(c) + 1 }
