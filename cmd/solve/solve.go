// Package solve handles the AI math solver command
package solve

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/solver"
)

var imagePath string

// Cmd represents the solve command
var Cmd = &cobra.Command{
	Use:   "solve [question]",
	Short: "Ask the AI math solver",
	Long: `Sends a free-text math question, an image of a problem, or both to the
configured AI model and prints its answer. Requires ai.enabled and a
GEMINI_API_KEY.`,
	Run: solveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Image file with the problem")
}

func solveFunc(cmd *cobra.Command, args []string) {
	prompt := solver.Prompt{Text: strings.Join(args, " ")}

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			root.Log.Fatalf("Cannot read image '%s': %v", imagePath, err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(imagePath))
		if mimeType == "" {
			mimeType = "image/png"
		}
		prompt.Image = &solver.ImageData{MIMEType: mimeType, Data: data}
	}

	if prompt.IsEmpty() {
		root.Log.Fatal("Provide a question, an image, or both")
	}

	timeout := 30 * time.Second
	if root.Cfg != nil && root.Cfg.AI.TimeoutSeconds > 0 {
		timeout = time.Duration(root.Cfg.AI.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	answer, ok := root.Session.Solve(ctx, prompt)
	if !ok {
		root.Log.Warn(answer)
		return
	}
	root.Log.Info(answer)
}
