package grid

// ObjectNavigator tracks the current selection within a list of items laid
// out as a grid. It maps items to indices by identity (==) and back.
type ObjectNavigator[T comparable] struct {
	items    []T
	walker   *Walker
	onSelect func(next, prev T)
	current  int
}

// ObjectOption configures an ObjectNavigator.
type ObjectOption[T comparable] func(*objectOptions[T])

type objectOptions[T comparable] struct {
	initial    T
	hasInitial bool
}

// WithInitial selects item initially. An item not in the list is ignored and
// the first item is selected.
func WithInitial[T comparable](item T) ObjectOption[T] {
	return func(o *objectOptions[T]) {
		o.initial = item
		o.hasInitial = true
	}
}

// IndexOf returns the position of item in items by identity, or -1.
func IndexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

// NewObjectNavigator returns a navigator over items arranged in rows of
// columns, paging pageSize rows at a time. onSelect runs on every successful
// transition with the new item and the previously current one.
func NewObjectNavigator[T comparable](
	items []T,
	columns, pageSize int,
	onSelect func(next, prev T),
	opts ...ObjectOption[T],
) (*ObjectNavigator[T], error) {
	var o objectOptions[T]
	for _, opt := range opts {
		opt(&o)
	}

	walker, err := NewWalker(WalkerConfig{
		CellCount:   len(items),
		ColumnCount: columns,
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, err
	}

	current := 0
	if o.hasInitial {
		if i := IndexOf(items, o.initial); i >= 0 {
			current = i
		}
	}

	return &ObjectNavigator[T]{
		items:    items,
		walker:   walker,
		onSelect: onSelect,
		current:  current,
	}, nil
}

// Current returns the selected item, or the zero T when there are no items.
func (n *ObjectNavigator[T]) Current() T {
	if len(n.items) == 0 {
		var zero T
		return zero
	}
	return n.items[n.current]
}

// Index returns the selected position.
func (n *ObjectNavigator[T]) Index() int { return n.current }

// Len returns the number of items.
func (n *ObjectNavigator[T]) Len() int { return len(n.items) }

// Items returns the list being navigated. Callers must not modify it.
func (n *ObjectNavigator[T]) Items() []T { return n.items }

// Shape returns the grid shape derived from the items and layout.
func (n *ObjectNavigator[T]) Shape() Shape { return n.walker.Shape() }

// Move applies cmd to the current selection.
func (n *ObjectNavigator[T]) Move(cmd Command) (T, error) {
	if !cmd.Valid() {
		var zero T
		return zero, newInvalidTransition(cmd)
	}
	if len(n.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return n.transition(n.walker.Apply(cmd, n.current)), nil
}

// Select makes item current. It fails without side effects when item is not
// in the list.
func (n *ObjectNavigator[T]) Select(item T) (T, error) {
	i := IndexOf(n.items, item)
	if i < 0 {
		var zero T
		return zero, newInvalidTransition(item)
	}
	return n.transition(i), nil
}

// Navigate dispatches an untyped argument: nil queries the current item, a
// command moves, and an item in the list is selected. Anything else fails
// and leaves the selection unchanged.
func (n *ObjectNavigator[T]) Navigate(arg any) (T, error) {
	if arg == nil {
		return n.Current(), nil
	}
	if cmd, ok := asCommand(arg); ok {
		return n.Move(cmd)
	}
	if item, ok := arg.(T); ok {
		return n.Select(item)
	}
	var zero T
	return zero, newInvalidTransition(arg)
}

// transition notifies before committing so the callback sees the old
// selection as current.
func (n *ObjectNavigator[T]) transition(next int) T {
	prev := n.current
	if n.onSelect != nil {
		n.onSelect(n.items[next], n.items[prev])
	}
	n.current = next
	return n.items[next]
}
