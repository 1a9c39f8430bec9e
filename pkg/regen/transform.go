package regen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedTemplate means the input artifact does not carry the two
// anchor regions the profile expects: an anchor is missing, duplicated,
// or the enumeration block is never closed.
var ErrMalformedTemplate = errors.New("malformed template")

// transform states. Outside the enumeration block every line is copied
// or substituted; inside it the stale entries are dropped until the
// closing marker turns up.
type scanState int

const (
	scanCopy scanState = iota
	scanDiscard
)

// Transform streams the artifact from r to w, replacing the version
// line with the dataset version and rebuilding the enumeration block
// from classifiers, in the given order. Every other line is copied
// through with its original terminator. Transform never touches the
// filesystem; commit is the caller's problem.
func Transform(w io.Writer, r io.Reader, version string, classifiers []string, p Profile) error {
	var (
		br = bufio.NewReader(r)
		bw = bufio.NewWriter(w)

		state      = scanCopy
		sawVersion bool
		sawBlock   bool
	)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		if line != "" {
			switch state {
			case scanCopy:
				switch {
				case strings.HasPrefix(line, p.VersionPrefix):
					if sawVersion {
						return fmt.Errorf("%w: version line %q appears more than once", ErrMalformedTemplate, p.VersionPrefix)
					}
					sawVersion = true
					fmt.Fprintf(bw, p.VersionFormat+"\n", version)

				case line == p.BlockOpen+"\n":
					if sawBlock {
						return fmt.Errorf("%w: enumeration block %q appears more than once", ErrMalformedTemplate, p.BlockOpen)
					}
					sawBlock = true
					bw.WriteString(line)
					state = scanDiscard

				default:
					bw.WriteString(line)
				}

			case scanDiscard:
				if line == p.BlockClose+"\n" {
					for _, c := range classifiers {
						fmt.Fprintf(bw, p.SerialFormat+"\n", Sanitize(c), c)
						fmt.Fprintf(bw, p.MemberFormat+"\n", Sanitize(c), c)
					}
					bw.WriteString(line)
					state = scanCopy
				}
			}
		}

		if readErr != nil {
			break
		}
	}

	if state == scanDiscard {
		return fmt.Errorf("%w: enumeration block %q is never closed by %q", ErrMalformedTemplate, p.BlockOpen, p.BlockClose)
	}
	if !sawVersion {
		return fmt.Errorf("%w: no line starts with %q", ErrMalformedTemplate, p.VersionPrefix)
	}
	if !sawBlock {
		return fmt.Errorf("%w: opening marker %q not found", ErrMalformedTemplate, p.BlockOpen)
	}

	return bw.Flush()
}
