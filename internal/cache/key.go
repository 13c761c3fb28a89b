package cache

import (
	"slices"
	"strings"
)

// Key identifies one cached query. Keys are hierarchical: ["todos"] is a
// prefix of ["todos", "list"] and of ["todos", "detail", "<id>"].
type Key []string

// NewKey builds a Key from its segments.
func NewKey(segments ...string) Key {
	return Key(slices.Clone(segments))
}

// String renders the key as its map identifier.
func (k Key) String() string {
	return strings.Join(k, "/")
}

// Collection returns the first segment.
func (k Key) Collection() string {
	if len(k) == 0 {
		return ""
	}

	return k[0]
}

// HasPrefix reports whether prefix matches the leading segments of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}

	return slices.Equal(k[:len(prefix)], prefix)
}

// Append returns a new key with more segments.
func (k Key) Append(segments ...string) Key {
	out := make(Key, 0, len(k)+len(segments))
	out = append(out, k...)

	return append(out, segments...)
}

// Keys groups the query keys of one collection.
type Keys struct {
	collection string
}

// KeysFor returns the key family of a collection.
func KeysFor(collection string) Keys {
	return Keys{collection: collection}
}

// All matches every query of the collection.
func (k Keys) All() Key { return NewKey(k.collection) }

// Lists matches the list queries.
func (k Keys) Lists() Key { return k.All().Append("list") }

// Details matches every detail query.
func (k Keys) Details() Key { return k.All().Append("detail") }

// Detail is the query of a single entity.
func (k Keys) Detail(id string) Key { return k.Details().Append(id) }

// Key families of the two remote collections.
var (
	TodoKeys = KeysFor("todos")
	UserKeys = KeysFor("users")
)
