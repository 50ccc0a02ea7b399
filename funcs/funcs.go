package funcs

// SPDX-License-Identifier: Apache-2.0

// Must panics if the error is non-nil, else does nothing.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue panics if the error is non-nil, else returns the value of type T.
func MustValue[T any](t T, err error) T {
	Must(err)

	return t
}
