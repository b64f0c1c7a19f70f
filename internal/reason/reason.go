// Package reason applies qualitative secondary-preference rules to a
// restaurant candidate set. A candidate survives only if it passes every
// active rule; survivors carry a justification built from the attribute
// values that satisfied each rule.
package reason

// #region imports
import (
	"fmt"
	"strings"

	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

// #endregion

// #region flags

// Flags holds the optional secondary preferences. Each flag is monotonically
// settable during a session and only cleared by a restart.
type Flags struct {
	Romantic      bool
	Children      bool
	AssignedSeats bool
	Touristic     bool
}

// Any reports whether at least one flag is active.
func (f Flags) Any() bool {
	return f.Romantic || f.Children || f.AssignedSeats || f.Touristic
}

// #endregion

// #region rules

// rule evaluates one flag against a candidate. It returns whether the
// candidate passes and, if so, the justification clause to append.
type rule struct {
	name   string
	active func(Flags) bool
	apply  func(restaurants.Record) (bool, string)
}

// rules are evaluated in a fixed order; justification clauses concatenate in
// this order.
var rules = []rule{
	{
		name:   "touristic",
		active: func(f Flags) bool { return f.Touristic },
		apply: func(r restaurants.Record) (bool, string) {
			// Romanian cuisine is excluded outright, before the cheap/good
			// test can pass it.
			if r.Food == "romanian" {
				return false, ""
			}
			if r.PriceRange == "cheap" && r.FoodQuality == "good" {
				return true, fmt.Sprintf("it is touristic because it is cheap and the food quality is %s", r.FoodQuality)
			}
			return false, ""
		},
	},
	{
		name:   "assigned seats",
		active: func(f Flags) bool { return f.AssignedSeats },
		apply: func(r restaurants.Record) (bool, string) {
			if r.Crowdedness == "busy" {
				return true, "you will be assigned a seat because it is busy"
			}
			return false, ""
		},
	},
	{
		name:   "children",
		active: func(f Flags) bool { return f.Children },
		apply: func(r restaurants.Record) (bool, string) {
			if r.LengthOfStay != "long" {
				return true, fmt.Sprintf("it is suitable for children because the stay is %s", r.LengthOfStay)
			}
			return false, ""
		},
	},
	{
		name:   "romantic",
		active: func(f Flags) bool { return f.Romantic },
		apply: func(r restaurants.Record) (bool, string) {
			// The length-of-stay requirement is checked first; failing it
			// removes the candidate regardless of crowdedness.
			if r.LengthOfStay != "long" {
				return false, ""
			}
			if r.Crowdedness == "busy" {
				return false, ""
			}
			return true, "it is romantic because the stay is long and it is not busy"
		},
	},
}

// #endregion

// #region filter

// Match pairs a surviving candidate with its accumulated justification.
type Match struct {
	Record        restaurants.Record
	Justification string
}

// Filter removes candidates failing any active rule and attaches the
// justification clauses for the rules each survivor satisfied. With no
// active flags every candidate survives with an empty justification.
func Filter(candidates []restaurants.Record, flags Flags) []Match {
	out := make([]Match, 0, len(candidates))
	for _, cand := range candidates {
		var clauses []string
		removed := false
		for _, ru := range rules {
			if !ru.active(flags) {
				continue
			}
			ok, clause := ru.apply(cand)
			if !ok {
				removed = true
				break
			}
			clauses = append(clauses, clause)
		}
		if removed {
			continue
		}
		out = append(out, Match{
			Record:        cand,
			Justification: strings.Join(clauses, " and "),
		})
	}
	return out
}

// #endregion
