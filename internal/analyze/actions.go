package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/llm-readability/models"
	"github.com/dtnitsch/llm-readability/pkg/langcheck"
	"github.com/dtnitsch/llm-readability/pkg/readability"
	"github.com/urfave/cli/v2"
)

// Error categories for the failure envelope.
const (
	errTypeParse    = "parse_error"
	errTypeInput    = "input_error"
	errTypeAnalysis = "analysis_error"
)

// AnalyzeAction is the app's default action: one JSON request on stdin, one
// JSON object on stdout, exit 0 or 1.
func AnalyzeAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if code := Run(os.Stdin, os.Stdout, logger); code != 0 {
		os.Exit(code)
	}
	return nil
}

// Run reads one AnalyzeRequest from in, writes exactly one JSON object to out
// (a Report or an ErrorOutput), and returns the process exit code. All
// diagnostics go to the logger; out carries only the result.
func Run(in io.Reader, out io.Writer, logger *slog.Logger) int {
	data, err := io.ReadAll(in)
	if err != nil {
		return writeError(out, logger, fmt.Errorf("failed to read input: %w", err), errTypeParse)
	}

	var req models.AnalyzeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return writeError(out, logger, fmt.Errorf("invalid input JSON: %w", err), errTypeParse)
	}

	if req.Text == nil || *req.Text == "" {
		return writeError(out, logger, fmt.Errorf("no text provided in input JSON"), errTypeInput)
	}
	text := *req.Text
	if strings.TrimSpace(text) == "" {
		return writeError(out, logger, fmt.Errorf("text cannot be empty"), errTypeInput)
	}

	analyzer, err := readability.NewAnalyzer()
	if err != nil {
		return writeError(out, logger, err, errTypeAnalysis)
	}

	report, err := analyzer.Analyze(text)
	if err != nil {
		return writeError(out, logger, err, errTypeAnalysis)
	}

	if english, detected := langcheck.NewChecker().LooksEnglish(text); !english {
		logger.Warn("text does not look like English; scores assume English text",
			"detected_language", detected)
	}

	if err := json.NewEncoder(out).Encode(report); err != nil {
		return writeError(out, logger, fmt.Errorf("failed to marshal report: %w", err), errTypeAnalysis)
	}
	return 0
}

// writeError emits the failure envelope and always returns exit code 1. A
// failure to serialize the envelope itself is only logged; the exit code
// still tells the caller the request failed.
func writeError(out io.Writer, logger *slog.Logger, err error, errType string) int {
	logger.Error("analysis failed", "error", err, "type", errType)
	envelope := models.ErrorOutput{
		Error: err.Error(),
		Type:  errType,
	}
	if encErr := json.NewEncoder(out).Encode(envelope); encErr != nil {
		logger.Error("failed to write error envelope", "error", encErr)
	}
	return 1
}
