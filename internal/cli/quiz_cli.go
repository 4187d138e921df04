// Package cli implements the interactive console session for the quiz.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"

	"github.com/AaroKoinsaari/language-learning-tool/internal/quiz"
	"github.com/AaroKoinsaari/language-learning-tool/internal/vocabulary"
	"github.com/fatih/color"
)

var (
	errEnd  = errors.New("end")
	errQuit = errors.New("quit")
)

// QuizCLI manages the interactive console session for one quiz run.
type QuizCLI struct {
	session      *quiz.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewQuizCLI loads the vocabulary from source and prepares a session over it.
func NewQuizCLI(source vocabulary.Source, policy quiz.Policy, rng *rand.Rand) (*QuizCLI, error) {
	set, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("source.Load() > %w", err)
	}

	session, err := quiz.NewSession(set, policy, rng)
	if err != nil {
		return nil, err
	}

	return &QuizCLI{
		session:      session,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}, nil
}

// QuestionCount returns the number of questions in the session.
func (c *QuizCLI) QuestionCount() int {
	return c.session.Remaining()
}

// Session asks one question: show the term, read one line of input, grade
// it and print the verdict. Typing 'q' ends the run early.
func (c *QuizCLI) Session(ctx context.Context) error {
	entry, ok := c.session.Next()
	if !ok {
		return errEnd
	}

	fmt.Fprintf(c.stdoutWriter, "Write in French: %s\n", c.bold.Sprint(entry.Term))

	answer, err := c.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
		// stdin closed, e.g. piped input ran out
		if strings.TrimSpace(answer) == "" {
			return errQuit
		}
	}

	if strings.EqualFold(strings.TrimSpace(answer), "q") {
		return errQuit
	}

	verdict := c.session.Grade(answer)
	if verdict.Correct {
		fmt.Fprintf(c.stdoutWriter, "✅ %s\n\n", color.GreenString("Correct!"))
	} else {
		fmt.Fprintf(c.stdoutWriter, "❌ %s The correct translation is %s\n\n",
			color.RedString("Wrong!"),
			c.italic.Sprint(verdict.Expected),
		)
	}
	return nil
}

// Run drives the session loop until every question has been asked, the
// user quits, or an interrupt arrives. The returned result tallies the
// questions actually asked.
func (c *QuizCLI) Run(ctx context.Context) (quiz.Result, error) {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := c.Session(ctx); err != nil {
				if errors.Is(err, errEnd) || errors.Is(err, errQuit) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return c.session.Result(), fmt.Errorf("error: %w", err)
		}
	}
	return c.session.Result(), nil
}
