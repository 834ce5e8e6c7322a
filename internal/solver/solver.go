// Package solver wraps the external AI math solver. The response is an
// untyped free-text payload: the engine strips residual markup delimiters
// before display but performs no structural validation, and no core invariant
// depends on the content, only on success or failure of the call.
package solver

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Apology is the user-facing substitute when the solver call fails or
// returns an empty response.
const Apology = "Sorry, I couldn't generate a solution."

// ImageData is an inline image attachment for a solve request.
type ImageData struct {
	MIMEType string
	Data     []byte
}

// Prompt carries either a text question, an image, or both (image plus a
// text instruction about it).
type Prompt struct {
	Text  string
	Image *ImageData
}

// IsEmpty reports whether the prompt carries neither text nor image.
func (p Prompt) IsEmpty() bool {
	return strings.TrimSpace(p.Text) == "" && p.Image == nil
}

// Client is the external AI solver collaborator. Implementations interact
// with a generative model service and return its free-form text response.
type Client interface {
	Solve(ctx context.Context, prompt Prompt) (string, error)
}

// CleanResponse strips residual LaTeX delimiters the model may emit despite
// the prompt instructions.
func CleanResponse(text string) string {
	text = strings.ReplaceAll(text, "$$", "")
	text = strings.ReplaceAll(text, `\[`, "")
	text = strings.ReplaceAll(text, `\]`, "")
	return text
}

// Solve invokes the client and normalizes the outcome: a cleaned response
// and ok=true on success, the apology string and ok=false on failure or an
// empty response. Errors never escape; the worst outcome is "unavailable".
func Solve(ctx context.Context, client Client, prompt Prompt) (string, bool) {
	if client == nil {
		return Apology, false
	}

	text, err := client.Solve(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("AI solver call failed")
		return Apology, false
	}

	text = CleanResponse(text)
	if strings.TrimSpace(text) == "" {
		return Apology, false
	}
	return text, true
}
