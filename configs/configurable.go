package configs

// Configurable is implemented by values that can be read from config files.
// ConfigKeys lists the cue paths to try, most specific first.
type Configurable interface {
	ConfigKeys() []string
}

// Lookup returns the first non-zero value found under any of T's keys.
func Lookup[T interface {
	Configurable
	comparable
}](loader Loader) T {
	var zero T
	for _, key := range zero.ConfigKeys() {
		if value := First[T](loader, key); value != zero {
			return value
		}
	}
	return zero
}
