package bitmap

const (
	// Transparent is an empty cell. It is neither rendered nor selectable.
	Transparent rune = 0
	// HalfTransparent is rendered as empty but is still selectable and
	// fills gaps below it during compositing.
	HalfTransparent rune = 1
	NBSP            rune = '\u00A0'
)

func IsTransparent(r rune) bool     { return r == Transparent }
func IsHalfTransparent(r rune) bool { return r == HalfTransparent }

// IsInvisible reports whether r renders as an empty cell.
func IsInvisible(r rune) bool {
	return r == Transparent || r == HalfTransparent
}

// Applicable is the precedence rule used when a layer is composited over
// another: a half-transparent value only fills a transparent cell.
func Applicable(old, incoming rune) bool {
	return old == Transparent || incoming != HalfTransparent
}
