package iostreams

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/marckohlbrugge/tempmail-cli/internal/notify"
)

// IOStreams provides access to standard input/output streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	stdinIsTTY  bool
	stdoutIsTTY bool
	stderrIsTTY bool

	colorEnabled bool
	colorChecked bool

	reader *bufio.Reader
}

// System returns IOStreams configured for the standard system streams.
func System() *IOStreams {
	return &IOStreams{
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		stdinIsTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutIsTTY: term.IsTerminal(int(os.Stdout.Fd())),
		stderrIsTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Test returns IOStreams backed by buffers, none of them a terminal.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}, in, out, errOut
}

// SetStdinTTY overrides terminal detection for stdin.
func (s *IOStreams) SetStdinTTY(isTTY bool) {
	s.stdinIsTTY = isTTY
}

// SetStdoutTTY overrides terminal detection for stdout.
func (s *IOStreams) SetStdoutTTY(isTTY bool) {
	s.stdoutIsTTY = isTTY
}

// IsStdinTTY returns true if stdin is connected to a terminal.
func (s *IOStreams) IsStdinTTY() bool {
	return s.stdinIsTTY
}

// IsStdoutTTY returns true if stdout is connected to a terminal.
func (s *IOStreams) IsStdoutTTY() bool {
	return s.stdoutIsTTY
}

// IsStderrTTY returns true if stderr is connected to a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	return s.stderrIsTTY
}

// IsInteractive returns true if both stdin and stdout are connected to terminals.
func (s *IOStreams) IsInteractive() bool {
	return s.stdinIsTTY && s.stdoutIsTTY
}

// IsSafeMode returns true when destructive operations should be blocked.
// Safe mode is active when stdin is not a terminal, unless TM_UNSAFE=1.
func (s *IOStreams) IsSafeMode() bool {
	if os.Getenv("TM_UNSAFE") == "1" {
		return false
	}
	return !s.stdinIsTTY
}

// ColorEnabled returns true if color output is enabled.
// Respects NO_COLOR and TM_NO_COLOR environment variables.
func (s *IOStreams) ColorEnabled() bool {
	if !s.colorChecked {
		s.colorChecked = true
		s.colorEnabled = s.stdoutIsTTY &&
			os.Getenv("NO_COLOR") == "" &&
			os.Getenv("TM_NO_COLOR") == ""
	}
	return s.colorEnabled
}

// SetColorEnabled forces color output on or off.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorChecked = true
	s.colorEnabled = enabled
}

// TerminalWidth returns the width of the terminal, or 80 if not a TTY.
func (s *IOStreams) TerminalWidth() int {
	if !s.stdoutIsTTY {
		return 80
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func (s *IOStreams) lineReader() *bufio.Reader {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.In)
	}
	return s.reader
}

// ReadLine prints prompt to ErrOut and reads one line from In.
func (s *IOStreams) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.ErrOut, prompt)
	line, err := s.lineReader().ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret reads a line without echoing it when stdin is a terminal.
func (s *IOStreams) ReadSecret(prompt string) (string, error) {
	f, ok := s.In.(*os.File)
	if !ok || !s.stdinIsTTY {
		return s.ReadLine(prompt)
	}
	fmt.Fprint(s.ErrOut, prompt)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(s.ErrOut)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

// Confirm asks a y/N question. Anything but y or yes is a no.
func (s *IOStreams) Confirm(prompt string) bool {
	answer, err := s.ReadLine(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// Notify prints a notification to ErrOut. It makes IOStreams a
// notify.Notifier.
func (s *IOStreams) Notify(n notify.Notification) {
	prefix := ""
	switch n.Level {
	case notify.Success:
		prefix = "✓ "
	case notify.Danger:
		prefix = "✗ "
	}
	fmt.Fprintln(s.ErrOut, prefix+n.Message)
}
