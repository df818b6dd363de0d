package gateway

// Result carries either the value of a backend call or the error it failed
// with. Handlers branch on Failed instead of threading (value, error) pairs
// through every step.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Capture turns a conventional (value, error) return into a Result.
func Capture[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Then runs fn on the value of r. A failed r is passed through and fn is not
// called.
func Then[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Capture(fn(r.value))
}

func (r Result[T]) Failed() bool { return r.err != nil }

func (r Result[T]) Value() T { return r.value }

func (r Result[T]) Err() error { return r.err }
