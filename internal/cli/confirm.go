package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirm asks a yes/no question and waits for a line on r. Anything other
// than an explicit yes, including EOF, is a no.
func Confirm(ctx context.Context, r io.Reader, w io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(w, FormatPrompt(question)); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	// The read cannot be interrupted; on cancellation the goroutine finishes
	// whenever the reader does.
	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", res.err)
		}
		return isYes(res.line), nil
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}
