// Package common provides small utilities shared across client layers.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove passwords from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
