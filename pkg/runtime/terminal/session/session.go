package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sonalyze/pkg/models/domain"
	"github.com/de-tools/sonalyze/pkg/services/query"
	"github.com/rs/zerolog"
)

const (
	Welcome      = "Bienvenue dans le conseiller virtuel Sonalyze !"
	Instructions = "Posez vos questions ou tapez 'quit' pour terminer."
	Prompt       = "Votre question : "
	Farewell     = "Session terminée. Merci !"
)

// Session is the question and answer loop over a fixed advice.
type Session struct {
	advice domain.Advice
	input  io.Reader
	output io.Writer
}

func New(advice domain.Advice, input io.Reader, output io.Writer) *Session {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &Session{
		advice: advice,
		input:  input,
		output: output,
	}
}

// Run reads one question per line until an exit keyword, the end of the
// input or the cancellation of ctx.
func (s *Session) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	scanner := bufio.NewScanner(s.input)

	fmt.Fprintf(s.output, "\n%s\n%s\n\n", Welcome, Instructions)

	questions := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.output, Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read question: %w", err)
			}
			fmt.Fprintln(s.output)
			break
		}
		questions++

		resp := query.Answer(scanner.Text(), s.advice)
		if resp.Done {
			break
		}
		for _, line := range resp.Lines {
			fmt.Fprintf(s.output, "- %s\n", line)
		}
	}

	fmt.Fprintln(s.output, Farewell)
	logger.Debug().Int("questions", questions).Msg("advisory session closed")
	return nil
}
