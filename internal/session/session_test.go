package session

import (
	"context"
	"errors"
	"os"
	"testing"

	"studywise-client/internal/pkg/logger"
	"studywise-client/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenUsesStoredEmail(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	require.NoError(t, store.Set(ctx, KeyUserEmail, "ada@example.com"))
	prompter := &StaticPrompter{Answer: "other@example.com"}

	s, err := Open(ctx, store, prompter, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", s.Email())
	assert.Zero(t, prompter.Calls, "stored identity must not prompt")
}

func TestOpenPromptsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	prompter := &StaticPrompter{Answer: "  grace@example.com \n"}

	s, err := Open(ctx, store, prompter, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", s.Email())
	assert.Equal(t, 1, prompter.Calls)

	stored, ok, err := store.Get(ctx, KeyUserEmail)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "grace@example.com", stored)

	again, err := Open(ctx, store, prompter, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", again.Email())
	assert.Equal(t, 1, prompter.Calls, "second run reads storage instead of prompting")
}

func TestOpenFallsBackToPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		prompter Prompter
	}{
		{"dismissed prompt", &StaticPrompter{Dismiss: true}},
		{"blank answer", &StaticPrompter{Answer: "   "}},
		{"no prompter", nil},
		{"failing prompter", failingPrompter{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemoryStorage()

			s, err := Open(ctx, store, tc.prompter, logger.NewNopLogger())
			require.NoError(t, err)
			assert.Equal(t, PlaceholderEmail, s.Email())

			stored, _, _ := store.Get(ctx, KeyUserEmail)
			assert.Equal(t, PlaceholderEmail, stored)
		})
	}
}

func TestSetEmail(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	s, err := Open(ctx, store, &StaticPrompter{Answer: "a@example.com"}, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Error(t, s.SetEmail(ctx, " "))
	assert.Equal(t, "a@example.com", s.Email())

	require.NoError(t, s.SetEmail(ctx, "b@example.com"))
	assert.Equal(t, "b@example.com", s.Email())
	stored, _, _ := store.Get(ctx, KeyUserEmail)
	assert.Equal(t, "b@example.com", stored)
}

func TestModeDefaultsAndPersistence(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	s, err := Open(ctx, store, nil, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, ModeBasic, s.Mode(ctx))

	require.NoError(t, s.SetMode(ctx, ModeLocal))
	assert.Equal(t, ModeLocal, s.Mode(ctx))
	stored, _, _ := store.Get(ctx, KeyAIMode)
	assert.Equal(t, "ollama", stored)

	require.NoError(t, store.Set(ctx, KeyAIMode, "turbo"))
	assert.Equal(t, ModeBasic, s.Mode(ctx), "unknown stored value falls back to basic")

	assert.Error(t, s.SetMode(ctx, Mode("turbo")))
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, storage.NewMemoryStorage(), nil, logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "light", s.Theme(ctx))
	require.NoError(t, s.SetTheme(ctx, "dark"))
	assert.Equal(t, "dark", s.Theme(ctx))
	assert.Error(t, s.SetTheme(ctx, "sepia"))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"free", ModeBasic, false},
		{"basic", ModeBasic, false},
		{"OLLAMA", ModeLocal, false},
		{"local-inference", ModeLocal, false},
		{"cloud", ModeCloud, false},
		{"cloud-inference", ModeCloud, false},
		{"gpt", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTerminalPrompterNonTTYDismisses(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	defer func() { isTerminal = orig }()

	p := &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
	answer, ok, err := p.Prompt(context.Background(), EmailQuestion)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, answer)
}

func TestTerminalPrompterReadsLine(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	defer func() { isTerminal = orig }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	_, err = w.WriteString("ada@example.com\n")
	require.NoError(t, err)
	w.Close()

	out, err := os.CreateTemp(t.TempDir(), "prompt")
	require.NoError(t, err)
	defer out.Close()

	p := &TerminalPrompter{In: r, Out: out}
	answer, ok, err := p.Prompt(context.Background(), EmailQuestion)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ada@example.com", answer)
}

type failingPrompter struct{}

func (failingPrompter) Prompt(context.Context, string) (string, bool, error) {
	return "", false, errors.New("tty closed")
}
