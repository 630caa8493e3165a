package cmds

// Var defines name taking one argument. "name." resets the value to zero.
func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines name setting the value to true and "!name" setting it to false.
func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
