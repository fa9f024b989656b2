package thor

import "strconv"

// Revision selects the block state a read call executes against. The zero
// value means "best block".
type Revision struct {
	value string
}

// RevisionBest selects the current best block.
var RevisionBest = Revision{}

// RevisionNumber selects the block at the given height.
func RevisionNumber(n uint32) Revision {
	return Revision{value: strconv.FormatUint(uint64(n), 10)}
}

// RevisionID selects the block with the given id.
func RevisionID(id Bytes32) Revision {
	return Revision{value: id.String()}
}

// IsBest reports whether the revision refers to the best block.
func (r Revision) IsBest() bool {
	return r.value == ""
}

// String returns the revision's query-parameter form, "best" for the zero
// value.
func (r Revision) String() string {
	if r.value == "" {
		return "best"
	}
	return r.value
}
