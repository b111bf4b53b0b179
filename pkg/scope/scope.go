package scope

// Let returns the result of calling fn with source.
func Let[T, R any](source T, fn func(T) R) R {
	return fn(source)
}

// Also calls fn with source for its side effect and returns source.
func Also[T any](source T, fn func(T)) T {
	fn(source)
	return source
}

// Run calls fn with source as its receiver argument and returns the result.
func Run[T, R any](source T, fn func(T) R) R {
	return fn(source)
}

// Apply calls fn with source as its receiver argument and returns source.
func Apply[T any](source T, fn func(T)) T {
	fn(source)
	return source
}

// TryLet is Let for functions that can fail. The error is returned as is.
func TryLet[T, R any](source T, fn func(T) (R, error)) (R, error) {
	return fn(source)
}

func TryRun[T, R any](source T, fn func(T) (R, error)) (R, error) {
	return fn(source)
}

// TryAlso calls fn with source and returns source along with fn's error.
func TryAlso[T any](source T, fn func(T) error) (T, error) {
	return source, fn(source)
}

func TryApply[T any](source T, fn func(T) error) (T, error) {
	return source, fn(source)
}
