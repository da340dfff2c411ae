package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// Prompter writes prompts and reads answers one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Println writes a line of output.
func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output.
func (p *Prompter) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// ReadLine shows prompt and returns the next input line without its line terminator.
// Lines of any length are accepted; a last line without a terminator is still returned.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Ask repeats prompt until parse accepts the answer, printing diagnostic after each rejection.
func Ask[T any](p *Prompter, prompt string, parse func(string) (T, error), diagnostic string) (T, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.Println(diagnostic)
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
