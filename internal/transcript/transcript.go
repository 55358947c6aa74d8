// Package transcript records a whole game for machine-readable output.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lox/bulgarian-solitaire/solitaire"
)

// Format selects the encoding used by Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Round is one configuration reached during a game.
type Round struct {
	Number int   `json:"round" yaml:"round"`
	Piles  []int `json:"piles" yaml:"piles,flow"`
}

// Transcript is every configuration of one game in order.
type Transcript struct {
	Seed       int64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	Total      int     `json:"total" yaml:"total"`
	FinalPiles int     `json:"final_piles" yaml:"final_piles"`
	Initial    []int   `json:"initial" yaml:"initial,flow"`
	Rounds     []Round `json:"rounds" yaml:"rounds"`
	Done       bool    `json:"done" yaml:"done"`
}

// Recorder is a simulator.Monitor that builds a Transcript.
type Recorder struct {
	transcript Transcript
}

// NewRecorder starts a transcript for a game drawn from seed (0 if the
// starting piles were entered by hand).
func NewRecorder(seed int64) *Recorder {
	return &Recorder{transcript: Transcript{
		Seed:       seed,
		Total:      solitaire.CardTotal,
		FinalPiles: solitaire.FinalPiles,
		Rounds:     []Round{},
	}}
}

func (r *Recorder) OnStart(initial []int) {
	r.transcript.Initial = slices.Clone(initial)
}

func (r *Recorder) OnRound(round int, piles []int) {
	r.transcript.Rounds = append(r.transcript.Rounds, Round{Number: round, Piles: slices.Clone(piles)})
}

func (r *Recorder) OnComplete(int) {
	r.transcript.Done = true
}

// Transcript returns what has been recorded so far.
func (r *Recorder) Transcript() Transcript {
	return r.transcript
}

// Write encodes t to w in the given format. FormatText is rejected because
// text output is streamed round by round instead.
func Write(w io.Writer, t Transcript, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding transcript as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding transcript as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("transcript format %q is not an encoding", format)
	}
}

// Read decodes a transcript written by Write.
func Read(r io.Reader, format Format) (Transcript, error) {
	var t Transcript
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&t)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&t)
	default:
		return t, fmt.Errorf("transcript format %q is not an encoding", format)
	}
	if err != nil {
		return t, fmt.Errorf("decoding %s transcript: %w", format, err)
	}
	return t, nil
}
