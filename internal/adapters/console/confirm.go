package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer implements ports.Confirmer with a y/N prompt on the
// terminal. Anything other than an explicit yes counts as no.
type Confirmer struct {
	in  io.Reader
	out io.Writer
}

// NewConfirmer creates a confirmer reading answers from in and writing
// prompts to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

// Confirm prints the question and reads one line. EOF counts as no.
func (c *Confirmer) Confirm(title, question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)

	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
