package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/advisor"
	"github.com/rs/zerolog"
)

// Agent is the interactive assistant that handles a chat session about one
// analysis.
type Agent struct {
	w    io.Writer
	r    *bufio.Reader
	chat *Chat
	conv Conversation
	// Print writes an assistant reply, defaults to a plain line.
	Print func(w io.Writer, reply string)
	// Log receives the chat failures, which do not end the session.
	Log zerolog.Logger
}

// New creates a new Agent grounded on the analysis a of portfolio p.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, chat *Chat, a *advisor.Analysis, p *advisor.PortfolioInput) *Agent {
	return &Agent{
		w:    w,
		r:    bufio.NewReader(r),
		chat: chat,
		conv: Conversation{Analysis: a, Portfolio: p},
		Print: func(w io.Writer, reply string) {
			fmt.Fprintln(w, reply)
		},
		Log: zerolog.Nop(),
	}
}

// History returns the messages exchanged so far.
func (a *Agent) History() []Message { return a.conv.Messages }

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. prompts are sent
// first, as if typed by the user.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to the portfolio assistant. Type 'bye' to exit.")

	// REPL loop
	for {
		// Print the prompt
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
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
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
		}

		if input == "bye" {
			return nil
		}

		a.conv.Messages = append(a.conv.Messages, Message{Role: User, Content: input})
		reply, err := a.chat.Reply(ctx, a.conv)
		if err != nil {
			if fatal(ctx, err) {
				return fmt.Errorf("assistant failed: %w", err)
			}
			// The question is dropped so that it can be asked again.
			a.conv.Messages = a.conv.Messages[:len(a.conv.Messages)-1]
			a.Log.Warn().Err(err).Msg("chat failed")
			fmt.Fprintln(a.w, FailedReply)
			continue
		}
		a.conv.Messages = append(a.conv.Messages, Message{Role: Assistant, Content: reply})
		a.Print(a.w, reply)
	}
}

// fatal reports whether err ends the session: a malformed conversation or a
// cancelled context. Provider failures are not.
func fatal(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, ErrNoMessages) ||
		errors.Is(err, ErrLastNotUser) ||
		errors.Is(err, ErrNoAnalysis)
}
