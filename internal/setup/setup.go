package setup

import (
	"context"
	"fmt"

	"github.com/kayz/gptautocli/internal/config"
	"github.com/kayz/gptautocli/internal/errors"
	"github.com/kayz/gptautocli/internal/logger"
	"github.com/kayz/gptautocli/internal/ui"
	"github.com/kayz/gptautocli/internal/verify"
)

const (
	apiKeyPrompt = "gptautocli requires a valid OpenAI API key (which will not be shared with anyone) to function.\n" +
		"Please add your key to ~/.gptautocli.config and restart the program or enter it here"

	riskPrompt = "A separate AI model evaluates each command generated by gptautocli to determine how risky it is on a scale of 1-5.\n" +
		"For example 'ls' would be a 1, while 'rm -rf *' would be a 5.\n" +
		"For a more in depth explanation of each risk level and how this system works, see the README (https://github.com/BSchoolland/gptautocli)\n" +
		"Entering 0 will require confirmation for all commands, while 6 will run all commands without confirmation.\n" +
		"Please enter the threshold of risk that a command must be below to be executed without confirmation (1-5)"
)

// State is the position of one configuration value in the bootstrap.
type State int

const (
	StateUnset State = iota
	StatePrompted
	StateValidated
	StatePersisted
	StateRejected
	StateTerminated
	StateAlreadyConfigured
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StatePrompted:
		return "prompted"
	case StateValidated:
		return "validated"
	case StatePersisted:
		return "persisted"
	case StateRejected:
		return "rejected"
	case StateTerminated:
		return "terminated"
	case StateAlreadyConfigured:
		return "already configured"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result holds the terminal state of each value. A value whose setup never
// started stays StateUnset.
type Result struct {
	APIKey      State
	CommandRisk State
}

// Complete reports whether both values ended up configured.
func (r Result) Complete() bool {
	return configured(r.APIKey) && configured(r.CommandRisk)
}

func configured(s State) bool {
	return s == StatePersisted || s == StateAlreadyConfigured
}

// Flow is the configuration bootstrap.
type Flow struct {
	ui       ui.UserInterface
	store    *config.Store
	verifier verify.Verifier
}

// New creates a Flow that talks to the user through u, persists through
// store and checks API keys with verifier.
func New(u ui.UserInterface, store *config.Store, verifier verify.Verifier) *Flow {
	return &Flow{
		ui:       u,
		store:    store,
		verifier: verifier,
	}
}

// Run configures every missing value in cfg. The API key is handled first;
// if it is rejected the risk threshold is never prompted for.
func (f *Flow) Run(ctx context.Context, cfg *config.Config) (Result, error) {
	var res Result

	state, err := f.setupAPIKey(ctx, cfg)
	res.APIKey = state
	if err != nil {
		return res, err
	}

	state, err = f.setupCommandRisk(cfg)
	res.CommandRisk = state
	return res, err
}

func (f *Flow) setupAPIKey(ctx context.Context, cfg *config.Config) (State, error) {
	if cfg.Has(config.KeyAPIKey) {
		logger.Debug("[Setup] %s already configured", config.KeyAPIKey)
		return StateAlreadyConfigured, nil
	}

	candidate := ui.AskSecret(f.ui, apiKeyPrompt)

	outcome := verify.Outcome{Diagnostic: "empty API key"}
	if candidate != "" {
		logger.Debug("[Setup] verifying API key")
		outcome = f.verifier.Verify(ctx, candidate)
	}
	if !outcome.OK {
		logger.Debug("[Setup] API key rejected: %s", outcome.Diagnostic)
		f.ui.Error("You entered: " + candidate)
		f.ui.Error("API key verification failed. Please check your API key and try again.")
		if outcome.Diagnostic != "" {
			f.ui.Error("Error: " + outcome.Diagnostic)
		}
		return StateTerminated, errors.NewCredentialRejected(candidate, outcome.Diagnostic)
	}
	f.ui.Info("API key verified successfully.")

	if err := f.persist(cfg, config.KeyAPIKey, candidate); err != nil {
		return StateTerminated, err
	}
	f.ui.Info("API key saved successfully.")
	return StatePersisted, nil
}

func (f *Flow) setupCommandRisk(cfg *config.Config) (State, error) {
	if cfg.Has(config.KeyCommandRisk) {
		logger.Debug("[Setup] %s already configured", config.KeyCommandRisk)
		return StateAlreadyConfigured, nil
	}

	raw := f.ui.Dialog(riskPrompt)
	if _, err := config.ParseRisk(raw); err != nil {
		logger.Debug("[Setup] risk threshold rejected: %v", err)
		f.ui.Error(fmt.Sprintf("Invalid command risk threshold entered: %q. Please enter a number between 0 and 6.", raw))
		return StateTerminated, errors.NewInvalidThreshold(raw, err)
	}

	// stored verbatim so the file keeps exactly what the user typed
	if err := f.persist(cfg, config.KeyCommandRisk, raw); err != nil {
		return StateTerminated, err
	}
	f.ui.Info("Command risk threshold saved successfully.")
	return StatePersisted, nil
}

func (f *Flow) persist(cfg *config.Config, key, value string) error {
	if err := f.store.SetAndPersist(cfg, key, value); err != nil {
		logger.Error("[Setup] failed to persist %s: %v", key, err)
		f.ui.Error(fmt.Sprintf("Could not save %s: %v", key, err))
		return err
	}
	logger.Debug("[Setup] %s written to %s", key, f.store.Path())
	return nil
}
