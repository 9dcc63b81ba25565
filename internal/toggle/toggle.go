package toggle

// Panel names an auxiliary panel.
type Panel int

const (
	History Panel = iota
	Help
)

func (p Panel) String() string {
	switch p {
	case History:
		return "history"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Set holds independent visibility flags for the auxiliary panels. All
// panels start hidden.
type Set struct {
	visible map[Panel]bool
}

func NewSet() *Set {
	return &Set{visible: make(map[Panel]bool)}
}

// Toggle flips p and returns its new visibility.
func (s *Set) Toggle(p Panel) bool {
	s.visible[p] = !s.visible[p]
	return s.visible[p]
}

func (s *Set) Visible(p Panel) bool {
	return s.visible[p]
}
