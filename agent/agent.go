// Package agent implements the interactive assist session: a facilitator
// model that delegates ledger questions to a bookkeeper expert equipped
// with function calls over the user's data.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the experts.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	facilitator *Expert
	experts     []*Expert
}

// New creates an Agent over the given experts. Output goes to w
// (typically os.Stdout) and user input is read from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		experts:     experts,
		facilitator: newFacilitator(experts...),
	}
}

// start opens a chat for every expert and for the facilitator.
func (a *Agent) start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL. Any initial prompts are answered
// before reading from the user; typing "bye" or Ctrl+D ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to flp assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
