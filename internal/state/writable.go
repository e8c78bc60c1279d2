// Package state holds the in-memory, observable application state of a
// client session: the note collection, its pinned and unpinned views, the
// session, the theme and the grid layout flag.
package state

import "sync"

// Writable is an observable value. Subscribers are notified synchronously,
// in subscription order, after every Set or Update.
type Writable[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewWritable returns a Writable holding initial.
func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Set replaces the value wholesale and notifies subscribers.
func (w *Writable[T]) Set(v T) {
	w.mu.Lock()
	w.value = v
	subs := w.snapshot()
	w.mu.Unlock()

	publish(subs, v)
}

// Update replaces the value with fn(current) and notifies subscribers. fn
// must not call back into w.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	v := w.value
	subs := w.snapshot()
	w.mu.Unlock()

	publish(subs, v)
}

// Subscribe registers fn for future changes and returns a function that
// removes it. The current value is not replayed.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subs = append(w.subs, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { w.unsubscribe(id) })
	}
}

func (w *Writable[T]) unsubscribe(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, s := range w.subs {
		if s.id == id {
			w.subs = append(w.subs[:i:i], w.subs[i+1:]...)
			return
		}
	}
}

// snapshot copies the subscriber list; callers hold w.mu.
func (w *Writable[T]) snapshot() []subscriber[T] {
	subs := make([]subscriber[T], len(w.subs))
	copy(subs, w.subs)
	return subs
}

func publish[T any](subs []subscriber[T], v T) {
	for _, s := range subs {
		s.fn(v)
	}
}

// Readable is the read side of an observable value.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// Derived is a read-only value computed from a source Readable. It is
// recomputed on every change of the source.
type Derived[T any] struct {
	out         *Writable[T]
	unsubscribe func()
}

// NewDerived computes fn(source) now and again on every change of source.
func NewDerived[S, T any](source Readable[S], fn func(S) T) *Derived[T] {
	d := &Derived[T]{out: NewWritable(fn(source.Get()))}
	d.unsubscribe = source.Subscribe(func(v S) {
		d.out.Set(fn(v))
	})
	return d
}

func (d *Derived[T]) Get() T {
	return d.out.Get()
}

func (d *Derived[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return d.out.Subscribe(fn)
}

// Close detaches the derived value from its source. Later source changes no
// longer reach it.
func (d *Derived[T]) Close() {
	d.unsubscribe()
}
