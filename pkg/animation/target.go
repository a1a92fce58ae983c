package animation

// Target is the numeric sink an animation pushes its computed value into
// on every tick. SetValue must be side-effect only: it never fails and
// never blocks.
type Target interface {
	SetValue(value float64)
}

// CallbackTarget invokes a function with the animation value each tick.
type CallbackTarget struct {
	callback func(value float64)

	// OnDispose, if set, runs when Dispose is called.
	OnDispose func()
}

// NewCallbackTarget creates a target that forwards values to callback.
func NewCallbackTarget(callback func(value float64)) *CallbackTarget {
	return &CallbackTarget{callback: callback}
}

// SetValue forwards the value to the wrapped callback.
func (t *CallbackTarget) SetValue(value float64) {
	if t.callback != nil {
		t.callback(value)
	}
}

// Dispose runs the teardown hook, if any, and drops the callback.
func (t *CallbackTarget) Dispose() {
	if t.OnDispose != nil {
		t.OnDispose()
		t.OnDispose = nil
	}
	t.callback = nil
}

// PropertyTarget binds an animation to a named numeric property of some
// object through a typed setter. The name is kept for diagnostics only.
type PropertyTarget struct {
	name string
	set  func(value float64)
}

// NewPropertyTarget creates a target writing to the property behind set.
func NewPropertyTarget(name string, set func(value float64)) *PropertyTarget {
	return &PropertyTarget{name: name, set: set}
}

// Name returns the bound property name.
func (t *PropertyTarget) Name() string { return t.name }

// SetValue writes the value through the property setter.
func (t *PropertyTarget) SetValue(value float64) {
	if t.set != nil {
		t.set(value)
	}
}
