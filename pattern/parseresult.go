// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// ParseResult is a tagged success/failure carrier, per §3/§4.3. It never
// panics or allocates on the success path: constructing a ParseError
// captures its arguments but only formats a message when Error() is
// eventually called.
type ParseResult[T any] struct {
	value T
	err   *ParseError
}

// Ok builds a successful ParseResult.
func Ok[T any](v T) ParseResult[T] {
	return ParseResult[T]{value: v}
}

// Err builds a failed ParseResult from an already-constructed ParseError.
func Err[T any](err *ParseError) ParseResult[T] {
	return ParseResult[T]{err: err}
}

// Success reports whether r represents a successfully parsed value.
func (r ParseResult[T]) Success() bool { return r.err == nil }

// Value returns the parsed value and a nil error on success, or the zero
// value and a non-nil error on failure.
func (r ParseResult[T]) Value() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// MustValue returns the parsed value, panicking if r is a failure. It is
// meant for tests and example code, not for production parsing paths.
func (r ParseResult[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// ParseError returns the underlying failure, or nil on success.
func (r ParseResult[T]) ParseError() *ParseError { return r.err }

// convertParseResult re-types a failed ParseResult for a different value
// kind, without allocating a new error (§4.3's convert_error). It must not
// be called on a successful ParseResult.
func convertParseResult[From, To any](r ParseResult[From]) ParseResult[To] {
	return ParseResult[To]{err: r.err}
}
