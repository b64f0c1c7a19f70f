package dialog

// #region imports
import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
	"github.com/mkoppelaar/restaurant-dialog/internal/config"
	"github.com/mkoppelaar/restaurant-dialog/internal/logging"
)

// #endregion

// #region controller

// Controller drives one conversation: it classifies each utterance, feeds
// the result through the transition machine and keeps the current snapshot.
// The transcript is optional; a nil transcript disables turn persistence.
type Controller struct {
	machine    *Machine
	classifier classify.Classifier
	transcript *logging.Transcript
	log        *zap.SugaredLogger

	session Session
	state   State
}

// NewController builds a controller with a fresh session.
func NewController(machine *Machine, classifier classify.Classifier, opts config.Options, transcript *logging.Transcript, log *zap.SugaredLogger) *Controller {
	return &Controller{
		machine:    machine,
		classifier: classifier,
		transcript: transcript,
		log:        log,
		session:    NewSession(opts),
		state:      StateNone,
	}
}

// Session returns the current snapshot.
func (c *Controller) Session() Session { return c.session }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Done reports whether the conversation reached its terminal state.
func (c *Controller) Done() bool { return c.state == StateGoodbye }

// #endregion

// #region turns

// Open performs the opening turn and returns the greeting.
func (c *Controller) Open(ctx context.Context) (string, error) {
	if c.state != StateNone {
		return "", fmt.Errorf("conversation already opened")
	}
	return c.step(ctx, "", classify.ActNone)
}

// Respond handles one user utterance and returns the system message.
func (c *Controller) Respond(ctx context.Context, utterance string) (string, error) {
	if c.state == StateNone {
		return "", fmt.Errorf("conversation not opened")
	}
	if c.Done() {
		return "", nil
	}

	act, err := c.classifier.Classify(ctx, utterance)
	if err != nil {
		// Classification trouble degrades the turn, never the session.
		c.log.Warnw("classification failed, treating turn as null",
			"session", c.session.ID, "error", err)
		act = classify.ActNull
	}
	return c.step(ctx, utterance, act)
}

func (c *Controller) step(_ context.Context, utterance string, act classify.Act) (string, error) {
	next, state, message := c.machine.Step(c.session, c.state, utterance, act)
	c.log.Debugw("dialog turn",
		"session", next.ID,
		"turn", next.Turn,
		"act", string(act),
		"from", string(c.state),
		"to", string(state))
	c.session = next
	c.state = state

	if c.transcript != nil {
		entry := logging.TurnEntry{
			SessionID: next.ID,
			TurnNum:   next.Turn,
			State:     string(state),
			Act:       string(act),
			Utterance: utterance,
			Response:  message,
			CreatedAt: time.Now().UTC(),
		}
		if err := c.transcript.Record(entry); err != nil {
			c.log.Warnw("transcript write failed", "session", next.ID, "error", err)
		}
	}
	return message, nil
}

// #endregion

// #region run

// exitSentinels end the interactive loop immediately, outside the dialog.
var exitSentinels = map[string]bool{"exit": true, "quit": true}

// Run drives an interactive conversation over the given reader and writer
// until the dialog reaches goodbye, an exit sentinel is typed or the input
// ends.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	greetingMsg, err := c.Open(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, greetingMsg)

	scanner := bufio.NewScanner(in)
	for !c.Done() && scanner.Scan() {
		utterance := strings.TrimSpace(scanner.Text())
		if exitSentinels[strings.ToLower(utterance)] {
			return nil
		}
		message, err := c.Respond(ctx, utterance)
		if err != nil {
			return err
		}
		if message != "" {
			fmt.Fprintln(out, message)
		}
	}
	return scanner.Err()
}

// #endregion
