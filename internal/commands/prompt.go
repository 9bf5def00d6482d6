package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptLine prints a label and reads one line of input. The trailing
// newline is stripped; surrounding whitespace is trimmed. EOF with no
// input is an error so scripted stdin can't silently produce empty
// answers.
func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
