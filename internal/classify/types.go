package classify

import "context"

// #region act

// Act is the dialog-act label assigned to a user utterance.
type Act string

const (
	ActAck      Act = "ack"
	ActAffirm   Act = "affirm"
	ActBye      Act = "bye"
	ActConfirm  Act = "confirm"
	ActDeny     Act = "deny"
	ActHello    Act = "hello"
	ActInform   Act = "inform"
	ActNegate   Act = "negate"
	ActNull     Act = "null"
	ActRepeat   Act = "repeat"
	ActReqalts  Act = "reqalts"
	ActReqmore  Act = "reqmore"
	ActRequest  Act = "request"
	ActRestart  Act = "restart"
	ActThankyou Act = "thankyou"

	// ActNone marks a turn without an utterance (only the opening turn).
	ActNone Act = ""
)

// #endregion

// #region interface

// Classifier maps an utterance to a dialog-act label. Implementations must be
// stateless per call so the controller can invoke them once per turn.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (Act, error)
}

// #endregion
