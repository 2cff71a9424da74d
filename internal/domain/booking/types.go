package booking

// Kind distinguishes customer bookings from manual admin blocks
// (including full-day closures).
type Kind string

const (
	KindNormal  Kind = "normal"
	KindBlocked Kind = "blocked"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindNormal, KindBlocked:
		return true
	default:
		return false
	}
}
