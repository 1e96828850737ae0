package grid

// ResizeSource delivers layout-change notifications. Subscribe returns a
// function that removes the subscription.
type ResizeSource interface {
	Subscribe(fn func()) (cancel func())
}

// ResizeNotifier is a ResizeSource the host fires on every resize. It is not
// safe for concurrent use; bubbletea calls Update from a single goroutine.
type ResizeNotifier struct {
	nextID int
	subs   map[int]func()
}

// NewResizeNotifier returns an empty notifier.
func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{subs: make(map[int]func())}
}

// Subscribe registers fn.
func (r *ResizeNotifier) Subscribe(fn func()) func() {
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Notify calls every subscriber.
func (r *ResizeNotifier) Notify() {
	for _, fn := range r.subs {
		fn()
	}
}

// Len returns the number of live subscriptions.
func (r *ResizeNotifier) Len() int { return len(r.subs) }
