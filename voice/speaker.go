package voice

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// CommandSpeaker speaks through whichever system TTS binary is installed:
// "say" on macOS, "espeak" elsewhere.
type CommandSpeaker struct {
	binary string
}

func NewCommandSpeaker() (*CommandSpeaker, error) {
	candidates := []string{"espeak", "espeak-ng"}
	if runtime.GOOS == "darwin" {
		candidates = []string{"say"}
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return &CommandSpeaker{binary: path}, nil
		}
	}
	return nil, fmt.Errorf("no text-to-speech binary found (tried %v)", candidates)
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	return exec.CommandContext(ctx, s.binary, text).Run()
}
