// Package input parses starting configurations typed by a player.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lox/bulgarian-solitaire/solitaire"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrZeroPile         = errors.New("empty pile")
	ErrNoPiles          = errors.New("no piles entered")
	ErrWrongTotal       = errors.New("wrong card total")
)

// Message is shown for every rejected configuration.
var Message = fmt.Sprintf("ERROR: Each pile must have at least one card and the total number of cards must be %d", solitaire.CardTotal)

// Parse reads a space-separated list of pile sizes. Only digits and
// whitespace are accepted, so signs and decimal points are rejected along
// with letters. A successful result always passes solitaire.ValidatePiles.
func Parse(line string) ([]int, error) {
	for i, r := range line {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, r, i)
		}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrNoPiles
	}

	piles := make([]int, 0, len(fields))
	sum := 0
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: pile %s is too large", ErrWrongTotal, f)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, f)
		}
		if n == 0 {
			return nil, ErrZeroPile
		}
		// Overflowing the total is already wrong; stop before sum can wrap.
		if n > solitaire.CardTotal || sum+n > solitaire.CardTotal {
			return nil, fmt.Errorf("%w: more than %d cards", ErrWrongTotal, solitaire.CardTotal)
		}
		piles = append(piles, n)
		sum += n
	}

	if sum != solitaire.CardTotal {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongTotal, sum, solitaire.CardTotal)
	}
	return piles, nil
}

// Prompter asks for a starting configuration until a valid one is entered.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading lines from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Scanner exposes the underlying line reader so single-step pauses can share
// buffered input with the prompt.
func (p *Prompter) Scanner() *bufio.Scanner {
	return p.in
}

// Prompt prints the instructions and reads lines until one parses. It
// returns io.EOF if input ends first.
func (p *Prompter) Prompt() ([]int, error) {
	fmt.Fprintf(p.out, "Number of total cards is %d\n", solitaire.CardTotal)
	fmt.Fprintln(p.out, "You will be entering the initial configuration of the cards (i.e., how many in each pile).")

	for {
		fmt.Fprintln(p.out, "Please enter a space-separated list of positive integers followed by newline:")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, fmt.Errorf("reading configuration: %w", err)
			}
			return nil, io.EOF
		}

		piles, err := Parse(p.in.Text())
		if err != nil {
			fmt.Fprintln(p.out, Message)
			continue
		}
		return piles, nil
	}
}
