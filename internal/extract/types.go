package extract

// #region slot

// Slot is one of the three required preference dimensions.
type Slot string

const (
	SlotArea  Slot = "area"
	SlotPrice Slot = "price"
	SlotFood  Slot = "food"
)

// Wildcard is the universal slot value meaning "no preference".
const Wildcard = "dontcare"

// #endregion

// #region slot-result

// Kind tags the outcome of extraction for a single slot.
type Kind int

const (
	// Absent means the slot was not referenced in the utterance at all.
	Absent Kind = iota
	// Mentioned means the slot was referenced but no value could be resolved.
	Mentioned
	// Resolved means a concrete domain value or the wildcard was found.
	Resolved
)

// SlotResult is the extraction outcome for one slot. Value is set only when
// Kind is Resolved.
type SlotResult struct {
	Kind  Kind
	Value string
}

// IsWildcard reports whether the slot resolved to the no-preference value.
func (r SlotResult) IsWildcard() bool {
	return r.Kind == Resolved && r.Value == Wildcard
}

// #endregion

// #region result

// Result maps each slot to its extraction outcome.
type Result struct {
	Area  SlotResult
	Price SlotResult
	Food  SlotResult
}

// Of returns the outcome for the given slot.
func (r Result) Of(slot Slot) SlotResult {
	switch slot {
	case SlotArea:
		return r.Area
	case SlotPrice:
		return r.Price
	case SlotFood:
		return r.Food
	}
	return SlotResult{}
}

// #endregion

// #region domains

// Domains holds the closed value sets for each slot, derived from the
// restaurant dataset at startup.
type Domains struct {
	Area  []string
	Price []string
	Food  []string
}

// #endregion
