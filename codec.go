package sapling

import "errors"

// ErrNoCodec is returned by hosts given a Codec without Format or Parse.
var ErrNoCodec = errors.New("codec needs Format and Parse")

// Codec converts items to and from the text a host shows and lets users
// type. Hosts use it for labels and for parsing edits.
type Codec[T any] struct {
	Format func(T) string
	Parse  func(string) (T, error)
}

// Valid reports whether both directions are set.
func (c Codec[T]) Valid() bool {
	return c.Format != nil && c.Parse != nil
}

// StringCodec is the identity codec for string trees.
func StringCodec() Codec[string] {
	return Codec[string]{
		Format: func(s string) string { return s },
		Parse:  func(s string) (string, error) { return s, nil },
	}
}
