package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayz/gptautocli/internal/config"
	"github.com/kayz/gptautocli/internal/errors"
	"github.com/kayz/gptautocli/internal/ui"
	"github.com/kayz/gptautocli/internal/verify"
)

type stubVerifier struct {
	outcome verify.Outcome
	calls   []string
}

func (s *stubVerifier) Verify(_ context.Context, candidate string) verify.Outcome {
	s.calls = append(s.calls, candidate)
	return s.outcome
}

func accepting() *stubVerifier {
	return &stubVerifier{outcome: verify.Outcome{OK: true}}
}

func rejecting(diag string) *stubVerifier {
	return &stubVerifier{outcome: verify.Outcome{Diagnostic: diag}}
}

func newStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), config.FileName))
}

func reload(t *testing.T, store *config.Store) *config.Config {
	t.Helper()
	cfg, err := store.Load()
	require.NoError(t, err)
	return cfg
}

func TestRunFreshConfiguration(t *testing.T) {
	store := newStore(t)
	rec := ui.NewRecorder("sk-good", "4")
	v := accepting()

	cfg, err := store.Load()
	require.NoError(t, err)

	res, err := New(rec, store, v).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, StatePersisted, res.APIKey)
	assert.Equal(t, StatePersisted, res.CommandRisk)
	assert.True(t, res.Complete())
	assert.Equal(t, errors.ExitSuccess, errors.ExitCode(err))

	assert.Equal(t, []string{"sk-good"}, v.calls)
	assert.Len(t, rec.SecretPrompts, 1)
	assert.Len(t, rec.Prompts, 1)
	assert.Contains(t, rec.SecretPrompts[0], "OpenAI API key")
	assert.Contains(t, rec.Prompts[0], "Entering 0 will require confirmation for all commands")
	assert.Equal(t, []string{
		"API key verified successfully.",
		"API key saved successfully.",
		"Command risk threshold saved successfully.",
	}, rec.Infos)
	assert.Empty(t, rec.Errors)

	assert.Equal(t, map[string]string{
		config.KeyAPIKey:      "sk-good",
		config.KeyCommandRisk: "4",
	}, reload(t, store).Values())
}

func TestRunAlreadyConfigured(t *testing.T) {
	store := newStore(t)
	cfg := config.NewMemory()
	require.NoError(t, store.SetAndPersist(cfg, config.KeyAPIKey, "sk-old"))
	require.NoError(t, store.SetAndPersist(cfg, config.KeyCommandRisk, "3"))

	rec := ui.NewRecorder()
	v := accepting()
	res, err := New(rec, store, v).Run(context.Background(), reload(t, store))
	require.NoError(t, err)

	assert.Equal(t, StateAlreadyConfigured, res.APIKey)
	assert.Equal(t, StateAlreadyConfigured, res.CommandRisk)
	assert.True(t, res.Complete())
	assert.Zero(t, rec.Dialogs())
	assert.Empty(t, v.calls, "stored keys are not re-verified")
	assert.Empty(t, rec.Infos)

	got, _ := reload(t, store).Get(config.KeyCommandRisk)
	assert.Equal(t, "3", got)
}

func TestRunKeepsStoredValuesThatNoLongerValidate(t *testing.T) {
	store := newStore(t)
	cfg := config.NewMemory()
	require.NoError(t, cfg.Set(config.KeyAPIKey, ""))
	require.NoError(t, cfg.Set(config.KeyCommandRisk, "42"))

	rec := ui.NewRecorder()
	res, err := New(rec, store, rejecting("unused")).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, StateAlreadyConfigured, res.APIKey)
	assert.Equal(t, StateAlreadyConfigured, res.CommandRisk)
	assert.Zero(t, rec.Dialogs())
}

func TestRunRiskBoundaries(t *testing.T) {
	tests := []struct {
		input  string
		accept bool
	}{
		{"0", true},
		{"6", true},
		{"1", true},
		{"5", true},
		{"-1", false},
		{"7", false},
		{"9", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			store := newStore(t)
			cfg := config.NewMemory()
			require.NoError(t, store.SetAndPersist(cfg, config.KeyAPIKey, "sk"))

			rec := ui.NewRecorder(tt.input)
			res, err := New(rec, store, accepting()).Run(context.Background(), cfg)

			stored, ok := reload(t, store).Get(config.KeyCommandRisk)
			if tt.accept {
				require.NoError(t, err)
				assert.Equal(t, StatePersisted, res.CommandRisk)
				require.True(t, ok)
				assert.Equal(t, tt.input, stored)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.InvalidThreshold))
			assert.Equal(t, 1, errors.ExitCode(err))
			assert.Equal(t, StateTerminated, res.CommandRisk)
			assert.False(t, ok, "nothing may be written for a rejected threshold")
			require.Len(t, rec.Errors, 1)
			assert.Contains(t, rec.Errors[0], `"`+tt.input+`"`)
			assert.Contains(t, rec.Errors[0], "between 0 and 6")
		})
	}
}

func TestRunCredentialRejected(t *testing.T) {
	store := newStore(t)
	rec := ui.NewRecorder("sk-bad", "3")
	v := rejecting("APIError: Incorrect API key provided (status 401)")

	res, err := New(rec, store, v).Run(context.Background(), config.NewMemory())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CredentialRejected))
	assert.Equal(t, 1, errors.ExitCode(err))
	assert.Equal(t, StateTerminated, res.APIKey)
	assert.Equal(t, StateUnset, res.CommandRisk)
	assert.False(t, res.Complete())

	assert.Equal(t, []string{"sk-bad"}, v.calls)
	assert.Empty(t, rec.Prompts, "risk threshold must not be prompted after a rejected key")
	assert.Empty(t, rec.Infos)
	require.Len(t, rec.Errors, 3)
	assert.Equal(t, "You entered: sk-bad", rec.Errors[0])
	assert.Contains(t, rec.Errors[1], "API key verification failed")
	assert.Contains(t, rec.Errors[2], "Incorrect API key provided")

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "no file may be written")
}

func TestRunEmptyKeySkipsNetwork(t *testing.T) {
	rec := ui.NewRecorder("")
	v := accepting()

	res, err := New(rec, newStore(t), v).Run(context.Background(), config.NewMemory())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CredentialRejected))
	assert.Equal(t, StateTerminated, res.APIKey)
	assert.Empty(t, v.calls)
	assert.Contains(t, strings.Join(rec.Errors, "\n"), "empty API key")
}

func TestRunOnlyRiskMissing(t *testing.T) {
	store := newStore(t)
	cfg := config.NewMemory()
	require.NoError(t, store.SetAndPersist(cfg, config.KeyAPIKey, "sk-kept"))

	rec := ui.NewRecorder("2")
	v := accepting()
	res, err := New(rec, store, v).Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, StateAlreadyConfigured, res.APIKey)
	assert.Equal(t, StatePersisted, res.CommandRisk)
	assert.Empty(t, rec.SecretPrompts)
	assert.Empty(t, v.calls)
	assert.Equal(t, map[string]string{
		config.KeyAPIKey:      "sk-kept",
		config.KeyCommandRisk: "2",
	}, reload(t, store).Values())
}

func TestRunKeyPersistedBeforeRiskFailure(t *testing.T) {
	store := newStore(t)
	rec := ui.NewRecorder("sk-good", "9")

	res, err := New(rec, store, accepting()).Run(context.Background(), config.NewMemory())
	require.Error(t, err)
	assert.Equal(t, StatePersisted, res.APIKey)
	assert.Equal(t, StateTerminated, res.CommandRisk)

	assert.Equal(t, map[string]string{config.KeyAPIKey: "sk-good"}, reload(t, store).Values())
}

func TestRunStoreUnwritable(t *testing.T) {
	// the store path is a directory, so every write fails
	store := config.NewStore(t.TempDir())
	rec := ui.NewRecorder("sk-good", "3")

	res, err := New(rec, store, accepting()).Run(context.Background(), config.NewMemory())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.StoreUnwritable))
	assert.Equal(t, StateTerminated, res.APIKey)
	assert.Equal(t, StateUnset, res.CommandRisk)
	assert.Equal(t, []string{"API key verified successfully."}, rec.Infos)
	require.Len(t, rec.Errors, 1)
	assert.Contains(t, rec.Errors[0], config.KeyAPIKey)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "persisted", StatePersisted.String())
	assert.Equal(t, "already configured", StateAlreadyConfigured.String())
	assert.Equal(t, "State(99)", State(99).String())
}
