package classify

// #region imports
import (
	"context"
	"strings"
)

// #endregion

// #region keywords

var ackWords = []string{"kay", "okay"}

var affirmWords = []string{"yes", "right"}

var byeWords = []string{"goodbye", "bye"}

var confirmWords = []string{"serve"}

var denyWords = []string{"wrong", "dont", "not"}

var helloWords = []string{"hi", "hello", "halo"}

var informWords = []string{
	"north", "east", "south", "west", "restaurant", "priced", "any",
	"scottish", "bistro", "cheap", "expensive", "town", "looking",
	"mediterranean", "seafood",
}

var negateWords = []string{"no"}

var nullWords = []string{"sil", "cough", "background_speech"}

var repeatWords = []string{"again", "repeat", "back"}

var reqaltsWords = []string{"how", "about", "else"}

var reqmoreWords = []string{"more"}

var requestWords = []string{"address", "postcode", "phone", "post"}

var restartWords = []string{"reset", "start"}

var thankyouWords = []string{"thank"}

// #endregion

// #region rule-based

// RuleBased classifies utterances via whole-word keyword matching. No model
// call; used as the offline default and as the fallback behind the trained
// classifier. The check order is fixed: more frequent acts win ties.
type RuleBased struct{}

// NewRuleBased returns the keyword classifier.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Classify assigns a dialog-act label to the utterance. The zero-information
// fallback is inform, the majority class in the dialog-act corpus.
func (r *RuleBased) Classify(_ context.Context, utterance string) (Act, error) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(utterance)))

	checks := []struct {
		act      Act
		keywords []string
	}{
		{ActInform, informWords},
		{ActRequest, requestWords},
		{ActThankyou, thankyouWords},
		{ActReqalts, reqaltsWords},
		{ActNull, nullWords},
		{ActAffirm, affirmWords},
		{ActNegate, negateWords},
		{ActBye, byeWords},
		{ActConfirm, confirmWords},
		{ActHello, helloWords},
		{ActRepeat, repeatWords},
		{ActAck, ackWords},
		{ActDeny, denyWords},
		{ActRestart, restartWords},
		{ActReqmore, reqmoreWords},
	}

	for _, c := range checks {
		if containsAny(words, c.keywords) {
			return c.act, nil
		}
	}
	return ActInform, nil
}

// #endregion

// #region helpers

func containsAny(words, keywords []string) bool {
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return true
			}
		}
	}
	return false
}

// #endregion
