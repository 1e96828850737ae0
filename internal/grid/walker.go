package grid

// WalkerConfig is the grid shape in the terms a layout uses.
type WalkerConfig struct {
	CellCount   int
	ColumnCount int
	PageSize    int
}

// Walker applies named commands to an index. It holds nothing but its
// Stepper and is cheap to rebuild whenever the layout changes.
type Walker struct {
	stepper *Stepper
}

// NewWalker builds a Walker for cfg.
func NewWalker(cfg WalkerConfig) (*Walker, error) {
	s, err := NewStepper(Shape{
		Size:      cfg.CellCount,
		RowLength: cfg.ColumnCount,
		PageSize:  cfg.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &Walker{stepper: s}, nil
}

// Apply returns the index reached from current by cmd. Unknown commands
// leave current unchanged.
func (w *Walker) Apply(cmd Command, current int) int {
	next, _ := w.stepper.Step(cmd, current)
	return next
}

// Shape returns the underlying grid shape.
func (w *Walker) Shape() Shape {
	return w.stepper.Shape()
}
