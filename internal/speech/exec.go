package speech

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

// execEngine shells out to a system TTS command (say on macOS, espeak or
// spd-say on Linux), appending the text as the final argument.
type execEngine struct {
	argv []string
}

// NewExecEngine parses a TTS command line into an Engine. The command
// is split shell-style, so quoted arguments like
// `espeak -v en -s 150` work as expected.
func NewExecEngine(command string) (Engine, error) {
	parser := shellwords.NewParser()
	argv, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse tts command: %w", err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("tts command empty")
	}
	return &execEngine{argv: argv}, nil
}

func (e *execEngine) Speak(ctx context.Context, text string) error {
	args := append(append([]string{}, e.argv[1:]...), text)
	cmd := exec.CommandContext(ctx, e.argv[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("tts command failed: %w (%s)", err, out)
	}
	return nil
}
