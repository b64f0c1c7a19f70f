package dialog

// #region imports
import (
	"fmt"
	"strings"

	"github.com/mkoppelaar/restaurant-dialog/internal/extract"
	"github.com/mkoppelaar/restaurant-dialog/internal/reason"
)

// #endregion

// #region phrasing

// phrasing selects between the formal and informal message variants.
type phrasing bool

const (
	formal   phrasing = false
	informal phrasing = true
)

func (p phrasing) pick(formalMsg, informalMsg string) string {
	if p == informal {
		return informalMsg
	}
	return formalMsg
}

// #endregion

// #region prompts

func greeting(p phrasing) string {
	return p.pick(
		"Hello, welcome to the Cambridge restaurant system. You can ask for restaurants by area, price range or food type. How may I help you?",
		"Hey there! I'm gonna help you pick a spot to eat. Just tell me the area, price range and what kind of food you like.",
	)
}

func askPrompt(slot extract.Slot, p phrasing) string {
	switch slot {
	case extract.SlotArea:
		return p.pick(
			"Which part of town would you like the restaurant to be located?",
			"Where about in town do you wanna eat?",
		)
	case extract.SlotPrice:
		return p.pick(
			"What price range would you prefer for the restaurant?",
			"How pricy do you want to eat?",
		)
	case extract.SlotFood:
		return p.pick(
			"What type of food would you prefer?",
			"What kind of food are you in the mood for?",
		)
	}
	return ""
}

func confirmMessage(slot extract.Slot, value string) string {
	shown := value
	if value == extract.Wildcard {
		shown = "don't care"
	}
	return fmt.Sprintf("You chose %s %s. Is that correct?", slot, shown)
}

func extrasPrompt(p phrasing) string {
	return p.pick(
		"Do you have any additional requirements, such as romantic, suitable for children, assigned seats or touristic?",
		"Anything else you care about? Romantic, good for kids, assigned seats or touristic?",
	)
}

func noMatchMessage(p phrasing) string {
	return p.pick(
		"Unfortunately there are no restaurants that meet your preferences. Would you like to change the area, price range or food type?",
		"Sorry, nothing meets your wishes. Wanna change the area, price range or food type?",
	)
}

func suggestMessage(m reason.Match, only bool, p phrasing) string {
	lead := p.pick(
		fmt.Sprintf("%s is a restaurant that meets your requirements", m.Record.Name),
		fmt.Sprintf("%s is just what you were looking for", m.Record.Name),
	)
	if only {
		lead = p.pick(
			fmt.Sprintf("%s is the only restaurant that meets your requirements", m.Record.Name),
			fmt.Sprintf("%s is the only match", m.Record.Name),
		)
	}
	if m.Justification != "" {
		lead += "; " + m.Justification
	}
	return lead + ". " + p.pick(
		"Would you like some information about this restaurant?",
		"Wanna know something about it?",
	)
}

func alternativeMessage(m reason.Match, p phrasing) string {
	lead := p.pick(
		fmt.Sprintf("%s is another restaurant that meets your requirements", m.Record.Name),
		fmt.Sprintf("%s is another match", m.Record.Name),
	)
	if m.Justification != "" {
		lead += "; " + m.Justification
	}
	return lead + ". " + p.pick(
		"Would you like some information about this restaurant?",
		"Wanna know something about it?",
	)
}

func noAlternativesMessage(p phrasing) string {
	return p.pick(
		"I am sorry, there are no other restaurants that meet your preferences.",
		"Sorry, that was the last one I had for you.",
	)
}

func lastStatementMessage(name string, p phrasing) string {
	return p.pick(
		fmt.Sprintf("Restaurant %s is an outstanding restaurant.", name),
		fmt.Sprintf("Restaurant %s is great, you will love it!", name),
	)
}

func fallbackMessage(p phrasing) string {
	return p.pick(
		"I didn't understand, could you rephrase that in a different way?",
		"Sorry, didn't get that. Can you say it differently?",
	)
}

func clarifyConfirmMessage() string {
	return "Please answer yes or no so I can confirm your preference."
}

// #endregion

// #region detail-messages

// detailKind selects which restaurant details a request asks for.
type detailKind int

const (
	detailAll detailKind = iota
	detailPhone
	detailAddress
	detailPostcode
)

// detailRequested picks the detail by keyword presence; none matched means
// all details.
func detailRequested(utterance string) detailKind {
	lower := strings.ToLower(utterance)
	switch {
	case strings.Contains(lower, "phone"):
		return detailPhone
	case strings.Contains(lower, "address") || strings.Contains(lower, "addr"):
		return detailAddress
	case strings.Contains(lower, "postcode") || strings.Contains(lower, "post code"):
		return detailPostcode
	}
	return detailAll
}

func detailMessage(m reason.Match, kind detailKind, p phrasing) string {
	r := m.Record
	switch kind {
	case detailPhone:
		return p.pick(
			fmt.Sprintf("The phone number of %s is %s.", r.Name, r.Phone),
			fmt.Sprintf("You can call %s on %s.", r.Name, r.Phone),
		)
	case detailAddress:
		return p.pick(
			fmt.Sprintf("The address of %s is %s.", r.Name, r.Addr),
			fmt.Sprintf("%s is on %s.", r.Name, r.Addr),
		)
	case detailPostcode:
		return p.pick(
			fmt.Sprintf("The postcode of %s is %s.", r.Name, r.Postcode),
			fmt.Sprintf("You can find %s at %s.", r.Name, r.Postcode),
		)
	}
	return p.pick(
		fmt.Sprintf("The details of %s are phone number %s, address %s and postcode %s.",
			r.Name, r.Phone, r.Addr, r.Postcode),
		fmt.Sprintf("Here you go: %s, phone %s, address %s, postcode %s.",
			r.Name, r.Phone, r.Addr, r.Postcode),
	)
}

// #endregion
