// Package ids encodes foreign catalog numeric identifiers as
// canonical-looking synthetic identifiers and back.
//
// A synthetic identifier has the shape of a UUID:
//
//	aaaaaaaa-aaaa-aaaa-aaaa-000001566021
//
// The four leading groups repeat one character chosen by entity kind and
// the last group is the zero padded decimal foreign id.
package ids

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrMalformedIdentifier is returned when a value is not a synthetic identifier.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// MaxID is the largest foreign id that fits the twelve digit group.
const MaxID int64 = 999999999999

// Kind is the entity kind carried by a synthetic identifier.
type Kind byte

const (
	Artist    Kind = 'a'
	Album     Kind = 'b'
	Track     Kind = 'c'
	Release   Kind = 'd'
	Recording Kind = 'e'
)

var kindNames = map[Kind]string{
	Artist:    "artist",
	Album:     "album",
	Track:     "track",
	Release:   "release",
	Recording: "recording",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%q)", byte(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Tag returns the "-kkkk-" marker that appears in every identifier of kind k.
func (k Kind) Tag() string {
	return "-" + strings.Repeat(string(k), 4) + "-"
}

// ParseKind maps a kind name such as "album" to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", name)
}

// Encode builds the synthetic identifier for id under kind. id must lie in
// [0, MaxID]; outside that range the result does not Decode.
func Encode(id int64, kind Kind) string {
	c := string(kind)
	return fmt.Sprintf("%s-%s-%s-%s-%012d",
		strings.Repeat(c, 8),
		strings.Repeat(c, 4),
		strings.Repeat(c, 4),
		strings.Repeat(c, 4),
		id,
	)
}

// Decode recovers the foreign id and kind from a synthetic identifier.
func Decode(value string) (int64, Kind, error) {
	if len(value) != 36 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, value)
	}
	// Every valid identifier is also a valid UUID string since all kind
	// characters are hex digits.
	if _, err := uuid.Parse(value); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, value)
	}

	groups := strings.Split(value, "-")
	kind := Kind(groups[0][0])
	if !kind.Valid() {
		return 0, 0, fmt.Errorf("%w: unknown kind in %q", ErrMalformedIdentifier, value)
	}
	for _, g := range groups[:4] {
		if strings.Trim(g, string(kind)) != "" {
			return 0, 0, fmt.Errorf("%w: mixed prefix in %q", ErrMalformedIdentifier, value)
		}
	}

	last := groups[4]
	for i := 0; i < len(last); i++ {
		if last[i] < '0' || last[i] > '9' {
			return 0, 0, fmt.Errorf("%w: non-numeric id in %q", ErrMalformedIdentifier, value)
		}
	}
	id, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedIdentifier, value)
	}
	return id, kind, nil
}

// HasKind reports whether s contains the tag of kind.
func HasKind(s string, kind Kind) bool {
	return strings.Contains(s, kind.Tag())
}
