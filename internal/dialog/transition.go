package dialog

// #region imports
import (
	"go.uber.org/zap"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/reason"
)

// #endregion

// #region machine

// Machine holds the per-process collaborators of the transition function.
// Machine itself carries no conversation state; everything mutable lives in
// the Session snapshot passed through Step.
type Machine struct {
	extractor *extract.Extractor
	repo      Repository
	rng       Rand
	log       *zap.SugaredLogger
}

// NewMachine builds a transition machine over the given extractor,
// restaurant repository and randomness source.
func NewMachine(extractor *extract.Extractor, repo Repository, rng Rand, log *zap.SugaredLogger) *Machine {
	return &Machine{
		extractor: extractor,
		repo:      repo,
		rng:       rng,
		log:       log,
	}
}

// #endregion

// #region step

// Step advances the dialog by one turn: given the current snapshot, state,
// user utterance and its dialog act, it returns the successor snapshot, the
// next state and the system message. The opening turn uses an empty
// utterance with ActNone.
func (m *Machine) Step(s Session, cur State, utterance string, act classify.Act) (Session, State, string) {
	p := phrasing(s.Options.InformalPhrasing)

	// Opening turn: fix the slot-ask order for the whole session and greet.
	if cur == StateNone {
		s = m.initAskOrder(s)
		return m.finish(s, StateWelcome, greeting(p))
	}

	// Goodbye is terminal and silent.
	if cur == StateGoodbye {
		return m.finish(s, StateGoodbye, "")
	}

	// A restart act always wins; the phrase fallback only when enabled.
	if act == classify.ActRestart ||
		(s.Options.AllowRestart && containsRestartPhrase(utterance)) {
		s = m.initAskOrder(s.reset())
		return m.finish(s, StateWelcome, greeting(p))
	}

	if cur == StateConfirm && s.Pending != nil {
		return m.stepConfirm(s, utterance, act, p)
	}

	if cur == StateAskExtras {
		// Flag keywords only switch preferences on; a plain refusal leaves
		// them untouched.
		if act != classify.ActDeny && act != classify.ActNegate &&
			!matchesWordSet(utterance, noWords) {
			s.Flags = parseExtraPreferences(utterance, s.Flags)
		}
		return m.lookup(s, p)
	}

	// Slot values are extracted for explicit informs, and additionally for
	// request/reqalts turns while slots are still open or being revised,
	// since the classifier frequently mislabels preference statements
	// phrased as questions.
	informLike := act == classify.ActInform ||
		((!s.allSlotsFilled() || cur == StateChangePreference) &&
			(act == classify.ActRequest || act == classify.ActReqalts))
	if informLike {
		var confirmed bool
		s, confirmed = m.captureSlots(s, cur, utterance, p)
		if confirmed {
			return m.finish(s, StateConfirm, s.Pending.Message)
		}
		act = classify.ActNone
	}

	return m.route(s, cur, utterance, act, p)
}

// #endregion

// #region confirmation

// stepConfirm resolves the active pending confirmation. A denial discards
// the whole queue and falls back to re-asking the denied slot; anything that
// is neither a clear yes nor a clear no re-asks the confirmation question.
func (m *Machine) stepConfirm(s Session, utterance string, act classify.Act, p phrasing) (Session, State, string) {
	yes := act == classify.ActAffirm || act == classify.ActConfirm ||
		matchesWordSet(utterance, yesWords)
	no := act == classify.ActNegate || act == classify.ActDeny ||
		matchesWordSet(utterance, noWords)

	switch {
	case no:
		fallback := s.Pending.FallbackState
		prompt := s.Pending.FallbackPrompt
		s.Pending = nil
		s.Queue = nil
		return m.finish(s, fallback, prompt)
	case yes:
		resume := s.Pending.FallbackState
		s = commit(s, s.Pending.Slot, s.Pending.Value)
		s.Pending = nil
		if len(s.Queue) > 0 {
			next := s.Queue[0]
			s.Queue = append([]Pending(nil), s.Queue[1:]...)
			s.Pending = &next
			return m.finish(s, StateConfirm, next.Message)
		}
		return m.route(s, resume, "", classify.ActNone, p)
	}
	return m.finish(s, StateConfirm, clarifyConfirmMessage()+" "+s.Pending.Message)
}

// #endregion

// #region capture

// captureSlots extracts slot values from the utterance and either queues
// them for confirmation or commits them directly. The wildcard value is only
// accepted for the slot currently being asked; elsewhere "any" is too
// ambiguous to bind. When confirmation starts, the returned bool is true and
// s.Pending carries the question to emit.
func (m *Machine) captureSlots(s Session, cur State, utterance string, p phrasing) (Session, bool) {
	res := m.extractor.Extract(utterance)

	out := s
	var captures []Pending
	for _, slot := range []extract.Slot{extract.SlotArea, extract.SlotPrice, extract.SlotFood} {
		r := res.Of(slot)
		if r.Kind != extract.Resolved {
			continue
		}
		if r.Value == extract.Wildcard && cur != askStateOf(slot) {
			continue
		}
		captures = append(captures, Pending{
			Slot:           slot,
			Value:          r.Value,
			FallbackState:  askStateOf(slot),
			FallbackPrompt: askPrompt(slot, p),
			Message:        confirmMessage(slot, r.Value),
		})
	}
	if len(captures) == 0 {
		return out, false
	}

	if out.Options.ConfirmPreferences {
		out.Pending = &captures[0]
		out.Queue = append([]Pending(nil), captures[1:]...)
		return out, true
	}
	for _, c := range captures {
		out = commit(out, c.Slot, c.Value)
	}
	return out, false
}

// commit writes a slot value and invalidates any standing suggestion, since
// a changed preference makes the previous lookup stale.
func commit(s Session, slot extract.Slot, value string) Session {
	s = s.withSlot(slot, value)
	s.Suggestion = nil
	s.Alternatives = nil
	return s
}

// #endregion

// #region routing

// route is the main state switch once restarts, confirmations and slot
// capture have been handled.
func (m *Machine) route(s Session, cur State, utterance string, act classify.Act, p phrasing) (Session, State, string) {
	if !s.allSlotsFilled() {
		slot := s.nextUnfilled()
		return m.finish(s, askStateOf(slot), askPrompt(slot, p))
	}

	// All slots resolved: the extras question is asked exactly once.
	if !s.ExtrasAsked {
		s.ExtrasAsked = true
		return m.finish(s, StateAskExtras, extrasPrompt(p))
	}

	if s.Suggestion == nil {
		return m.lookup(s, p)
	}

	inSuggestFlow := cur == StateSuggest || cur == StateProvideInfo || cur == StateLastStatement
	switch {
	case act == classify.ActReqalts && inSuggestFlow:
		if len(s.Alternatives) == 0 {
			return m.finish(s, cur, noAlternativesMessage(p))
		}
		i := m.rng.Intn(len(s.Alternatives))
		next := s.Alternatives[i]
		alts := append([]reason.Match(nil), s.Alternatives[:i]...)
		alts = append(alts, s.Alternatives[i+1:]...)
		s.Suggestion = &next
		s.Alternatives = alts
		return m.finish(s, StateSuggest, alternativeMessage(next, p))

	case act == classify.ActRequest && inSuggestFlow:
		kind := detailRequested(utterance)
		return m.finish(s, StateProvideInfo, detailMessage(*s.Suggestion, kind, p))

	case (act == classify.ActConfirm || act == classify.ActAffirm ||
		act == classify.ActAck || act == classify.ActNull) &&
		(cur == StateSuggest || cur == StateProvideInfo):
		return m.finish(s, StateLastStatement, lastStatementMessage(s.Suggestion.Record.Name, p))

	case (act == classify.ActBye || act == classify.ActThankyou) &&
		(cur == StateProvideInfo || cur == StateLastStatement):
		return m.finish(s, StateGoodbye, "")
	}

	return m.finish(s, cur, fallbackMessage(p))
}

// lookup queries the repository with the resolved preferences, applies the
// secondary-preference rules and routes on the number of survivors.
func (m *Machine) lookup(s Session, p phrasing) (Session, State, string) {
	records, err := m.repo.Lookup(s.Area, s.Price, s.Food)
	if err != nil {
		m.log.Errorw("restaurant lookup failed", "session", s.ID, "error", err)
		return m.finish(s, StateChangePreference, noMatchMessage(p))
	}

	matches := reason.Filter(records, s.Flags)
	switch len(matches) {
	case 0:
		return m.finish(s, StateChangePreference, noMatchMessage(p))
	case 1:
		s.Suggestion = &matches[0]
		s.Alternatives = nil
		return m.finish(s, StateSuggest, suggestMessage(matches[0], true, p))
	}

	i := m.rng.Intn(len(matches))
	winner := matches[i]
	alts := append([]reason.Match(nil), matches[:i]...)
	alts = append(alts, matches[i+1:]...)
	s.Suggestion = &winner
	s.Alternatives = alts
	return m.finish(s, StateSuggest, suggestMessage(winner, false, p))
}

// #endregion

// #region helpers

// initAskOrder fixes (and optionally shuffles) the slot elicitation order.
func (m *Machine) initAskOrder(s Session) Session {
	order := []extract.Slot{extract.SlotArea, extract.SlotPrice, extract.SlotFood}
	if s.Options.RandomSlotOrder {
		for i := len(order) - 1; i > 0; i-- {
			j := m.rng.Intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}
	}
	s.AskOrder = order
	return s
}

// nextUnfilled returns the first open slot in ask order.
func (s Session) nextUnfilled() extract.Slot {
	for _, slot := range s.AskOrder {
		if s.slotValue(slot) == "" {
			return slot
		}
	}
	return extract.SlotArea
}

// finish records the transition on the snapshot and returns the triple.
func (m *Machine) finish(s Session, next State, message string) (Session, State, string) {
	s.History = append(append([]State(nil), s.History...), next)
	s.Turn++
	return s, next, message
}

// #endregion
