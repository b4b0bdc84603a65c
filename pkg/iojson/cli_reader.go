package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned when no file was given and stdin is a terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe input")

// FileReader reads a value from the file named by its flag, or from stdin
// when the flag is empty.
type FileReader[T any] struct {
	// Decode parses the input. Nil decodes JSON into T.
	Decode func(io.Reader) (T, error)
	// Usage overrides the flag usage text.
	Usage string

	fileFlagValue string
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	usage := fr.Usage
	if usage == "" {
		usage = "path to JSON file (reads from stdin if not provided)"
	}
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       usage,
		Destination: &fr.fileFlagValue,
	}
}

// Path returns the file flag value.
func (fr *FileReader[T]) Path() string {
	return fr.fileFlagValue
}

// Read decodes the input from the file or stdin.
func (fr *FileReader[T]) Read() (T, error) {
	return fr.read(os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}

func (fr *FileReader[T]) read(stdin io.Reader, stdinIsTerminal bool) (T, error) {
	var zero T

	var reader io.Reader
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return zero, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if stdinIsTerminal {
			return zero, ErrNoInput
		}
		reader = stdin
	}

	if fr.Decode != nil {
		return fr.Decode(reader)
	}

	var input T
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return zero, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}
