package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user a question. ok is false when the prompt was
// dismissed (no terminal, EOF, empty input is still ok=true).
type Prompter interface {
	Prompt(ctx context.Context, question string) (answer string, ok bool, err error)
}

var isTerminal = term.IsTerminal // mockable

type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *TerminalPrompter) Prompt(ctx context.Context, question string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !isTerminal(int(p.In.Fd())) {
		return "", false, nil
	}

	fmt.Fprint(p.Out, question+" ")
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("read prompt answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	return strings.TrimSpace(line), true, nil
}

// StaticPrompter answers every prompt with Answer, or dismisses it.
type StaticPrompter struct {
	Answer  string
	Dismiss bool
	Calls   int
}

func (p *StaticPrompter) Prompt(_ context.Context, _ string) (string, bool, error) {
	p.Calls++
	if p.Dismiss {
		return "", false, nil
	}
	return p.Answer, true, nil
}
