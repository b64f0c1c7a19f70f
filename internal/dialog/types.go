package dialog

// #region imports
import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/mkoppelaar/restaurant-dialog/internal/config"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/reason"
	"github.com/mkoppelaar/restaurant-dialog/internal/restaurants"
)

// #endregion

// #region state

// State identifies a dialog state. The set is closed; transitions happen only
// through the machine's Step function.
type State string

const (
	// StateNone is the pre-dialog state before the opening turn.
	StateNone             State = ""
	StateWelcome          State = "welcome"
	StateAskArea          State = "ask_area"
	StateAskPrice         State = "ask_price"
	StateAskFood          State = "ask_food"
	StateConfirm          State = "confirm_preference"
	StateAskExtras        State = "ask_extras"
	StateChangePreference State = "change_preference"
	StateSuggest          State = "suggest"
	StateProvideInfo      State = "provide_info"
	StateLastStatement    State = "last_statement"
	// StateGoodbye is terminal: it emits no message and accepts no input.
	StateGoodbye State = "goodbye"
)

// askStateOf maps a slot to its ask state.
func askStateOf(slot extract.Slot) State {
	switch slot {
	case extract.SlotArea:
		return StateAskArea
	case extract.SlotPrice:
		return StateAskPrice
	case extract.SlotFood:
		return StateAskFood
	}
	return StateNone
}

// #endregion

// #region pending

// Pending holds one captured slot value awaiting user confirmation, together
// with where to fall back when the user denies it.
type Pending struct {
	Slot           extract.Slot
	Value          string
	FallbackState  State
	FallbackPrompt string
	Message        string
}

// #endregion

// #region session

// Session is the per-conversation snapshot. Step treats it as immutable and
// returns the successor snapshot, so no state is shared across turns.
type Session struct {
	ID      string
	Options config.Options

	// AskOrder fixes the slot elicitation order for the whole session. It is
	// populated (and optionally shuffled) on the Welcome transition.
	AskOrder []extract.Slot

	// Confirmed slot values; empty string means unset.
	Area  string
	Price string
	Food  string

	Flags       reason.Flags
	ExtrasAsked bool

	Suggestion   *reason.Match
	Alternatives []reason.Match

	// Pending is the active confirmation; Queue holds further captures from
	// the same turn in capture order.
	Pending *Pending
	Queue   []Pending

	History []State
	Turn    int
}

// NewSession creates a fresh session with the given behavior options.
func NewSession(opts config.Options) Session {
	return Session{
		ID:      uuid.New().String(),
		Options: opts,
	}
}

// slotValue returns the confirmed value for a slot.
func (s Session) slotValue(slot extract.Slot) string {
	switch slot {
	case extract.SlotArea:
		return s.Area
	case extract.SlotPrice:
		return s.Price
	case extract.SlotFood:
		return s.Food
	}
	return ""
}

// withSlot returns a copy with the slot committed.
func (s Session) withSlot(slot extract.Slot, value string) Session {
	switch slot {
	case extract.SlotArea:
		s.Area = value
	case extract.SlotPrice:
		s.Price = value
	case extract.SlotFood:
		s.Food = value
	}
	return s
}

// allSlotsFilled reports whether the three required slots are resolved.
func (s Session) allSlotsFilled() bool {
	return s.Area != "" && s.Price != "" && s.Food != ""
}

// reset clears everything a restart must clear, keeping identity and
// behavior options.
func (s Session) reset() Session {
	return Session{
		ID:      s.ID,
		Options: s.Options,
		Turn:    s.Turn,
	}
}

// #endregion

// #region repository

// Repository is the external restaurant lookup. Each filter may be the
// wildcard value, meaning no constraint for that field.
type Repository interface {
	Lookup(area, price, food string) ([]restaurants.Record, error)
}

// #endregion

// #region randomness

// Rand is the injected randomness source behind the three randomized
// choices: slot-ask order, winning candidate, next alternative.
type Rand interface {
	Intn(n int) int
}

// NewSeededRand returns a deterministic Rand for tests and replays.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// #endregion
