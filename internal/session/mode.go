package session

import (
	"fmt"
	"strings"
)

// Mode is the operating-mode hint sent to generation endpoints. The string
// value is what travels on the wire and what is persisted under KeyAIMode.
type Mode string

const (
	ModeBasic Mode = "free"
	ModeLocal Mode = "ollama"
	ModeCloud Mode = "cloud"

	DefaultMode = ModeBasic
)

func Modes() []Mode {
	return []Mode{ModeBasic, ModeLocal, ModeCloud}
}

func (m Mode) Valid() bool {
	switch m {
	case ModeBasic, ModeLocal, ModeCloud:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }

func (m Mode) Label() string {
	switch m {
	case ModeBasic:
		return "Basic (rule-based)"
	case ModeLocal:
		return "Local AI (Ollama)"
	case ModeCloud:
		return "Cloud AI"
	}
	return string(m)
}

// ParseMode accepts the wire values and the descriptive aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "basic":
		return ModeBasic, nil
	case "ollama", "local", "local-inference":
		return ModeLocal, nil
	case "cloud", "cloud-inference":
		return ModeCloud, nil
	}
	return "", fmt.Errorf("invalid mode %q: must be one of free, ollama, cloud", s)
}
