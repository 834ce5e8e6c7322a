package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Solve(ctx context.Context, prompt Prompt) (string, error) {
	return s.response, s.err
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain text untouched", "The answer is 42.", "The answer is 42."},
		{"Display math delimiters", `$$x = 3$$`, "x = 3"},
		{"Bracket delimiters", `\[x = 3\]`, "x = 3"},
		{"Mixed delimiters", `$$a\[b\]c$$`, "abc"},
		{"Single dollar kept", "costs $5", "costs $5"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanResponse(tc.input))
		})
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name       string
		client     Client
		expected   string
		expectedOK bool
	}{
		{"Successful solve", &stubClient{response: "x = 3"}, "x = 3", true},
		{"Response gets cleaned", &stubClient{response: `$$x = 3$$`}, "x = 3", true},
		{"Client error", &stubClient{err: errors.New("quota exceeded")}, Apology, false},
		{"Empty response", &stubClient{response: "   "}, Apology, false},
		{"Delimiters only", &stubClient{response: `$$\[\]$$`}, Apology, false},
		{"Nil client", nil, Apology, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, ok := Solve(context.Background(), tc.client, Prompt{Text: "1+1"})
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestPromptIsEmpty(t *testing.T) {
	assert.True(t, Prompt{}.IsEmpty())
	assert.True(t, Prompt{Text: "   "}.IsEmpty())
	assert.False(t, Prompt{Text: "1+1"}.IsEmpty())
	assert.False(t, Prompt{Image: &ImageData{MIMEType: "image/png", Data: []byte{1}}}.IsEmpty())
}
