package binio

import "io"

// RestoreOnError records the current position of r, invokes fn with r and
// that position, and returns fn's value on success. On failure it seeks r
// back to the recorded position and propagates the original error, so a
// speculative parse that consumed part of the stream leaves the position
// observably unchanged for the next attempt.
func RestoreOnError[T any](r *Reader, fn func(r *Reader, start int64) (T, error)) (T, error) {
	var zero T
	start, err := r.Pos()
	if err != nil {
		return zero, err
	}
	v, err := fn(r, start)
	if err != nil {
		if _, serr := r.Seek(start, io.SeekStart); serr != nil {
			return zero, serr
		}
		return zero, err
	}
	return v, nil
}
