package grid

import (
	"errors"
	"log/slog"
)

// DefaultPageSize is the number of rows pageUp and pageDown move.
const DefaultPageSize = 3

// ErrNoItemsProvider is returned by NewNavigator when Items is nil.
var ErrNoItemsProvider = errors.New("navigator needs an items provider")

// KeyEvent is a key press as delivered by the host toolkit.
type KeyEvent interface {
	String() string
}

// NavigatorConfig configures a Navigator.
type NavigatorConfig[T comparable] struct {
	// Items returns the current items in layout order. It is called again
	// only after MarkStale.
	Items func() []T

	// OnSelect is called with selectNow=false for the item losing the
	// selection, then with selectNow=true for the item gaining it.
	OnSelect func(item T, selectNow bool)

	// KeyMap maps canonical key names to commands. A nil map handles no keys.
	KeyMap map[string]Command

	// KeyName turns a key event into a KeyMap lookup key. Defaults to
	// KeyEvent.String.
	KeyName func(KeyEvent) string

	// Columns estimates the current column count. Defaults to
	// EstimateColumns(Offset) when Offset is set, otherwise one column.
	Columns ColumnEstimator[T]

	// Offset is the horizontal position of an item, used by the default
	// column estimator.
	Offset func(T) float64

	// PageSize is the number of rows per page. Defaults to DefaultPageSize.
	PageSize int

	// Resize, when set, invalidates the built navigator on every
	// notification until Close.
	Resize ResizeSource

	Logger *slog.Logger
}

// Navigator binds grid navigation to a changing item list and to key input.
// Both the item list and the ObjectNavigator built over it are cached and
// rebuilt on demand after invalidation.
type Navigator[T comparable] struct {
	provider func() []T
	onSelect func(item T, selectNow bool)
	keyMap   map[string]Command
	keyName  func(KeyEvent) string
	columns  ColumnEstimator[T]
	pageSize int
	log      *slog.Logger

	items  []T
	loaded bool

	nav *ObjectNavigator[T]
	// prev is the last invalidated navigator, consulted once on rebuild so
	// the selection survives when its item is still present.
	prev *ObjectNavigator[T]

	cancelResize func()
}

// NewNavigator returns a Navigator for cfg. Nothing is loaded until first use.
func NewNavigator[T comparable](cfg NavigatorConfig[T]) (*Navigator[T], error) {
	if cfg.Items == nil {
		return nil, ErrNoItemsProvider
	}

	g := &Navigator[T]{
		provider: cfg.Items,
		onSelect: cfg.OnSelect,
		keyMap:   cfg.KeyMap,
		keyName:  cfg.KeyName,
		columns:  cfg.Columns,
		pageSize: cfg.PageSize,
		log:      cfg.Logger,
	}
	if g.keyName == nil {
		g.keyName = func(ev KeyEvent) string { return ev.String() }
	}
	if g.columns == nil {
		if cfg.Offset != nil {
			g.columns = EstimateColumns(cfg.Offset)
		} else {
			g.columns = FixedColumns[T](1)
		}
	}
	if g.pageSize <= 0 {
		g.pageSize = DefaultPageSize
	}
	if cfg.Resize != nil {
		g.cancelResize = cfg.Resize.Subscribe(g.OnResize)
	}
	return g, nil
}

// HandleKey performs the transition mapped to ev and reports whether the key
// was consumed. An empty grid or an unmapped key is left for the caller.
func (g *Navigator[T]) HandleKey(ev KeyEvent) bool {
	if len(g.Items()) == 0 {
		return false
	}
	name := g.keyName(ev)
	cmd, ok := g.keyMap[name]
	if !ok {
		return false
	}
	if _, err := g.Move(cmd); err != nil {
		g.debug("key mapped to bad command", "key", name, "command", string(cmd), "err", err)
		return false
	}
	return true
}

// Lookup returns the command mapped to ev, if any.
func (g *Navigator[T]) Lookup(ev KeyEvent) (Command, bool) {
	cmd, ok := g.keyMap[g.keyName(ev)]
	return cmd, ok
}

// Current returns the selected item, or the zero T for an empty grid.
func (g *Navigator[T]) Current() T {
	return g.navigator().Current()
}

// Index returns the position of the selected item.
func (g *Navigator[T]) Index() int {
	return g.navigator().Index()
}

// Shape returns the grid shape the current navigator was built with.
func (g *Navigator[T]) Shape() Shape {
	return g.navigator().Shape()
}

// Move applies cmd to the selection.
func (g *Navigator[T]) Move(cmd Command) (T, error) {
	return g.navigator().Move(cmd)
}

// Select makes item current.
func (g *Navigator[T]) Select(item T) (T, error) {
	return g.navigator().Select(item)
}

// Navigate accepts nil, a Command or command name, or an item; see
// ObjectNavigator.Navigate.
func (g *Navigator[T]) Navigate(arg any) (T, error) {
	return g.navigator().Navigate(arg)
}

// Items returns the cached item list, loading it if needed.
func (g *Navigator[T]) Items() []T {
	if !g.loaded {
		g.items = g.provider()
		g.loaded = true
		g.debug("items loaded", "count", len(g.items))
	}
	return g.items
}

// MarkStale drops the cached items and navigator. Call it when the items
// change; the next access reloads them and keeps the selection if its item
// is still present.
func (g *Navigator[T]) MarkStale() {
	g.items = nil
	g.loaded = false
	g.dropNavigator()
}

// OnResize drops the cached navigator so the column count is estimated
// again. The items are kept.
func (g *Navigator[T]) OnResize() {
	g.dropNavigator()
}

// KeyMap returns the active key map.
func (g *Navigator[T]) KeyMap() map[string]Command { return g.keyMap }

// SetKeyMap replaces the active key map.
func (g *Navigator[T]) SetKeyMap(m map[string]Command) { g.keyMap = m }

// Close removes the resize subscription. The Navigator stays usable.
func (g *Navigator[T]) Close() {
	if g.cancelResize != nil {
		g.cancelResize()
		g.cancelResize = nil
	}
}

func (g *Navigator[T]) dropNavigator() {
	if g.nav != nil {
		g.prev = g.nav
	}
	g.nav = nil
}

func (g *Navigator[T]) navigator() *ObjectNavigator[T] {
	if g.nav != nil {
		return g.nav
	}

	items := g.Items()
	var current T
	if len(items) > 0 {
		current = items[0]
	}
	if g.prev != nil && g.prev.Len() > 0 {
		if last := g.prev.Current(); IndexOf(items, last) >= 0 {
			current = last
		}
	}

	cols := g.columns(items)
	if cols < 1 {
		g.debug("column estimate below one, using one", "estimate", cols)
		cols = 1
	}

	// cols and pageSize are both positive here, so construction cannot fail.
	nav, _ := NewObjectNavigator(items, cols, g.pageSize, g.notify, WithInitial(current))
	g.nav = nav
	g.prev = nil
	g.debug("navigator built", "items", len(items), "columns", cols, "index", nav.Index())
	return nav
}

func (g *Navigator[T]) notify(next, prev T) {
	if g.onSelect == nil {
		return
	}
	g.onSelect(prev, false)
	g.onSelect(next, true)
}

func (g *Navigator[T]) debug(msg string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.Debug(msg, args...)
}
