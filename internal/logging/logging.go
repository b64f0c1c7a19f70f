// Package logging builds the process logger and persists per-turn dialog
// provenance.
package logging

// #region imports
import (
	"fmt"

	"go.uber.org/zap"
)

// #endregion

// #region logger

// New returns the process logger. Debug mode switches to the development
// config with debug-level output.
func New(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.Sugar(), nil
}

// #endregion
