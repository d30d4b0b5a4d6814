// Package relations provides the relationship classification between users
// and its fixed integer mapping.
package relations

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("relations")

// Relationship classifies how a user relates to another. The integer values
// are stored and exchanged, so they are fixed: adding a relationship means
// appending, never reordering.
type Relationship uint8

// Defined relationships.
const (
	Stranger Relationship = iota
	Acquaintance
	CoWorker
	Friend
	Family
)

// names is indexed by a Relationship's integer value.
var names = [...]string{
	Stranger:     "stranger",
	Acquaintance: "acquaintance",
	CoWorker:     "co-worker",
	Friend:       "friend",
	Family:       "family",
}

// FromID returns the relationship stored as id.
func FromID(id uint8) (Relationship, error) {
	if int(id) >= len(names) {
		return 0, Error.New("unknown relationship id: %d", id)
	}

	return Relationship(id), nil
}

// ID returns the stored integer value of the relationship.
func (r Relationship) ID() uint8 {
	return uint8(r)
}

// String returns the relationship's name.
func (r Relationship) String() string {
	if int(r) >= len(names) {
		return "unknown"
	}

	return names[r]
}
