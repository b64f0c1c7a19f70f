package dialog

// #region imports
import (
	"strings"

	"github.com/mkoppelaar/restaurant-dialog/internal/reason"
)

// #endregion

// #region restart

// restartPhrases are the substring fallbacks for restart detection, applied
// only when restarts are allowed and the classifier did not already label the
// turn as a restart.
var restartPhrases = []string{"restart", "start over", "start again", "reset"}

func containsRestartPhrase(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, p := range restartPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// #endregion

// #region yes-no

var yesWords = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "sure": true, "correct": true,
	"absolutely": true, "affirmative": true, "right": true,
}

var noWords = map[string]bool{
	"no": true, "nope": true, "nah": true, "negative": true,
	"don't": true, "dont": true,
}

// matchesWordSet reports whether the whole normalized utterance or its first
// token is in the set. This is the local keyword fallback layered on top of
// classifier output during confirmation.
func matchesWordSet(utterance string, set map[string]bool) bool {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	if set[normalized] {
		return true
	}
	fields := strings.Fields(normalized)
	return len(fields) > 0 && set[fields[0]]
}

// #endregion

// #region extras

// parseExtraPreferences scans the utterance for secondary-preference
// keywords. Flags can only be switched on here; a restart is the only way to
// clear them.
func parseExtraPreferences(utterance string, current reason.Flags) reason.Flags {
	lower := strings.ToLower(utterance)
	out := current
	if strings.Contains(lower, "romantic") {
		out.Romantic = true
	}
	if strings.Contains(lower, "child") || strings.Contains(lower, "kid") {
		out.Children = true
	}
	if strings.Contains(lower, "assigned") || strings.Contains(lower, "seat") {
		out.AssignedSeats = true
	}
	if strings.Contains(lower, "tourist") {
		out.Touristic = true
	}
	return out
}

// #endregion
