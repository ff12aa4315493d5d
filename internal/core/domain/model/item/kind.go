package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind discriminates the catalog item variants stored in the single items
// table. The retrieval layer only ever reads the common name/price
// projection; kind-specific attributes are opaque to it.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// Book is a printed item with author and ISBN attributes.
	Book

	// Album is a music item with artist and studio attributes.
	Album

	// Movie is a film item with director and actor attributes.
	Movie
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Book:        "Book",
		Album:       "Album",
		Movie:       "Movie",
	}
}

func getValidKindStrings() map[Kind]string {
	return map[Kind]string{
		Book:  "Book",
		Album: "Album",
		Movie: "Movie",
	}
}

// Validate checks that the kind is one of the defined variants.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid item kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// This is also the discriminator value persisted in the items table.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// ParseKind converts a persisted discriminator value back to a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid item kind", s))
}
