package blake2bench

// This is useful for values we expect to observe a specific number of times, like the first digest
// of a run that later trials are compared against.
type setOnce[T any] struct {
	value T
	ok    bool
}

func (me *setOnce[T]) Set(t T) {
	if me.ok {
		panic("set more than once")
	}
	me.value = t
	me.ok = true
}

func (me *setOnce[T]) Ok() bool {
	return me.ok
}

func (me *setOnce[T]) Value() T {
	if !me.ok {
		panic("value not set")
	}
	return me.value
}

// The inverse of setOnce: holds a value until it's taken, after which any access panics. Used to
// make consuming operations fail fast on reuse.
type takeOnce[T any] struct {
	value T
	taken bool
}

func newTakeOnce[T any](t T) takeOnce[T] {
	return takeOnce[T]{value: t}
}

func (me *takeOnce[T]) Get() T {
	if me.taken {
		panic("value already taken")
	}
	return me.value
}

func (me *takeOnce[T]) Take() (t T) {
	t = me.Get()
	var zero T
	me.value = zero
	me.taken = true
	return
}

func (me *takeOnce[T]) Taken() bool {
	return me.taken
}
