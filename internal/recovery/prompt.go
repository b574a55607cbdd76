package recovery

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Answer is the operator's response to a read error prompt.
type Answer int

const (
	AnswerRetry Answer = iota
	AnswerZeroOnce
	AnswerZeroAlways
)

// PromptText is shown whenever a chunk fails and the policy is not sticky.
const PromptText = `Retry? Please enter "y" to retry (default), ` +
	`"n" to fill with zeros, or "z" to always fill with zeros [Ynz]: `

// ParseAnswer interprets the first character of line, case-insensitively.
// Anything unrecognized, including an empty line, means retry.
func ParseAnswer(line string) Answer {
	if line == "" {
		return AnswerRetry
	}
	switch line[0] {
	case 'n', 'N':
		return AnswerZeroOnce
	case 'z', 'Z':
		return AnswerZeroAlways
	default:
		return AnswerRetry
	}
}

// Prompter asks the operator on a text stream, one line per answer.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	style func(string) string
}

// NewPrompter reads answers from in and writes the prompt to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// WithStyle renders the prompt through style before writing it.
func (p *Prompter) WithStyle(style func(string) string) *Prompter {
	p.style = style
	return p
}

// Ask writes the prompt and blocks until a line is read. A closed or
// failing input stream yields ErrPromptInput.
func (p *Prompter) Ask(_ int64) (Answer, error) {
	text := PromptText
	if p.style != nil {
		text = p.style(text)
	}
	if _, err := io.WriteString(p.out, text); err != nil {
		return AnswerRetry, fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final unterminated line is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return ParseAnswer(line), nil
		}
		if errors.Is(err, io.EOF) {
			return AnswerRetry, ErrPromptInput
		}
		return AnswerRetry, fmt.Errorf("%w: %w", ErrPromptInput, err)
	}
	return ParseAnswer(line), nil
}
