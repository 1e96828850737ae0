package grid

import "fmt"

// Shape describes a grid: Size cells, RowLength cells per row, and PageSize
// rows per page. Rows are full except possibly the last.
type Shape struct {
	Size      int
	RowLength int
	PageSize  int
}

// Validate reports a non-positive row length or page size. Size is not
// checked; an empty grid is valid.
func (s Shape) Validate() error {
	if s.RowLength <= 0 {
		return fmt.Errorf("%w (got %d)", ErrRowLength, s.RowLength)
	}
	if s.PageSize <= 0 {
		return fmt.Errorf("%w (got %d)", ErrPageSize, s.PageSize)
	}
	return nil
}

// Stepper moves a linear index around a grid. It does not know the current
// position; every call takes it as input.
type Stepper struct {
	size      int
	rowLength int
	pageSize  int
	lastIndex int
}

// NewStepper validates shape and returns a Stepper for it.
func NewStepper(shape Shape) (*Stepper, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Stepper{
		size:      shape.Size,
		rowLength: shape.RowLength,
		pageSize:  shape.PageSize,
		lastIndex: max(0, shape.Size-1),
	}, nil
}

// Shape returns the shape the Stepper was built with.
func (s *Stepper) Shape() Shape {
	return Shape{Size: s.size, RowLength: s.rowLength, PageSize: s.pageSize}
}

// Step applies cmd to i. The bool is false for an unknown command, in which
// case i is returned unchanged.
func (s *Stepper) Step(cmd Command, i int) (int, bool) {
	rule, ok := commandRules[cmd]
	if !ok {
		return i, false
	}
	return rule(s, i), true
}

// Prev wraps from the first cell to the last.
func (s *Stepper) Prev(i int) int {
	if s.size == 0 {
		return 0
	}
	return (i - 1 + s.size) % s.size
}

// Next wraps from the last cell to the first.
func (s *Stepper) Next(i int) int {
	if s.size == 0 {
		return 0
	}
	return (i + 1) % s.size
}

func (s *Stepper) First() int { return 0 }

func (s *Stepper) Last() int { return s.lastIndex }

func (s *Stepper) Up(i int) int { return max(0, i-s.rowLength) }

func (s *Stepper) Down(i int) int { return min(s.lastIndex, i+s.rowLength) }

// Left stops at the start of the row.
func (s *Stepper) Left(i int) int {
	if i%s.rowLength > 0 {
		return i - 1
	}
	return i
}

// Right stops at the end of the row or at the last cell.
func (s *Stepper) Right(i int) int {
	if i%s.rowLength != s.rowLength-1 {
		return min(s.lastIndex, i+1)
	}
	return min(s.lastIndex, i)
}

func (s *Stepper) StartOfLine(i int) int { return i - i%s.rowLength }

// EndOfLine clamps to the last cell on a short final row.
func (s *Stepper) EndOfLine(i int) int {
	return min(s.lastIndex, s.StartOfLine(i)+s.rowLength-1)
}

func (s *Stepper) PageUp(i int) int { return max(0, i-s.pageSize*s.rowLength) }

func (s *Stepper) PageDown(i int) int {
	return min(s.lastIndex, i+s.pageSize*s.rowLength)
}
