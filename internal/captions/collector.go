package captions

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"photostrip/internal/failure"
	"photostrip/internal/geometry"
	"photostrip/internal/intake"
	"photostrip/internal/logging"
	"photostrip/internal/textutil"
)

const stageName = "captions"

const (
	captionPrompt = "Please fill in the description for the %s photo (number of characters <= %d):\n"
	tooLongReply  = "There are %d characters. Please enter fewer words.\n"
	acceptedReply = "Accepted\n"
	namePrompt    = "Name the new image file (only alphabet, number and underscore are accepted): "
)

// Collector prompts on out and reads answers line by line from in.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	// Echo writes each answer back to out. Useful when in is not a terminal
	// and the answers would otherwise be missing from the transcript.
	Echo bool
}

// NewCollector builds a Collector. A nil logger discards log output.
func NewCollector(in io.Reader, out io.Writer, logger *slog.Logger) *Collector {
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logging.NewComponentLogger(logger, "captions"),
	}
}

// Collect asks for one caption per photo, re-asking while a caption is longer
// than limit characters.
func (c *Collector) Collect(ctx context.Context, limit float64) ([]string, error) {
	captions := make([]string, 0, geometry.PhotoCount)
	maxChars := int(limit)
	for i := 0; i < geometry.PhotoCount; i++ {
		ordinal := intake.Ordinals[i]
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, err := fmt.Fprintf(c.out, captionPrompt, ordinal, maxChars); err != nil {
				return nil, failure.Wrap(failure.ErrIO, stageName, "prompt", "write caption prompt", err)
			}
			answer, err := c.readLine(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, failure.Wrap(failure.ErrValidation, stageName, "read",
					fmt.Sprintf("input ended before the %s caption was accepted", ordinal), err)
			}
			if n := textutil.RuneCount(answer); !Fits(answer, limit) {
				c.logger.Debug("caption rejected",
					logging.String(logging.FieldPhoto, ordinal),
					logging.Int("caption_chars", n),
					logging.Int("char_limit", maxChars),
				)
				fmt.Fprintf(c.out, tooLongReply, n)
				continue
			}
			fmt.Fprint(c.out, acceptedReply)
			captions = append(captions, answer)
			break
		}
	}
	return captions, nil
}

// OutputName asks for the output file stem until the answer is a valid name.
func (c *Collector) OutputName(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := fmt.Fprint(c.out, namePrompt); err != nil {
			return "", failure.Wrap(failure.ErrIO, stageName, "prompt", "write name prompt", err)
		}
		answer, err := c.readLine(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", failure.Wrap(failure.ErrValidation, stageName, "read",
				"input ended before a valid file name was entered", err)
		}
		if ValidName(answer) {
			return answer, nil
		}
		c.logger.Debug("output name rejected", logging.String("name", answer))
	}
}

type readResult struct {
	line string
	err  error
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned as is; io.ErrUnexpectedEOF means nothing was left.
// Cancelling ctx abandons the pending read, after which the Collector must
// not be used again.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	var line string
	var err error
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		line, err = res.line, res.err
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if c.Echo {
		fmt.Fprintln(c.out, line)
	}
	return line, nil
}
