package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brainydate/internal/llm"
	"github.com/abhisek/brainydate/internal/quiz"
	"github.com/abhisek/brainydate/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated IQ question set (no database)",
	Long: `Generate one question set and answer it in the terminal.

This is a stateless developer tool: no database, no timer, no events.
Without an LLM credential the built-in questions are shown.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 0, "Number of questions to generate (default: quiz.total_questions)")
	previewCmd.Flags().Bool("answers", false, "Print the answer key instead of asking")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	count, _ := cmd.Flags().GetInt("count")
	showAnswers, _ := cmd.Flags().GetBool("answers")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if count <= 0 {
		count = cfg.Quiz.TotalQuestions
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// No Recorder: nothing is written to the event log.
	provider, err := llm.NewProviderFromEnv(ctx, llm.Deps{Logger: logger})
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	src := quiz.NewLLMSource(provider, quiz.DefaultConfig(), quiz.WithLogger(logger))
	fmt.Printf("Generating %d questions...\n\n", count)
	batch, err := src.Produce(ctx, count)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	fmt.Printf("Source: %s\n", batch.Origin)
	if batch.FallbackReason != nil {
		fmt.Printf("Fallback reason: %v\n", batch.FallbackReason)
		logger.Debug("preview fell back", zap.Error(batch.FallbackReason))
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	for i, q := range batch.Questions {
		fmt.Printf("── Question %d/%d  [%s] ──\n", i+1, len(batch.Questions), q.Category)
		fmt.Println(q.Text)
		if q.ImageURL != "" {
			fmt.Printf("Image: %s\n", q.ImageURL)
		}
		for j, opt := range q.Options {
			mark := " "
			if showAnswers && q.IsCorrect(j) {
				mark = "✓"
			}
			fmt.Printf(" %s %d) %s\n", mark, j+1, opt)
		}

		if showAnswers {
			fmt.Println()
			continue
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		var choice int
		if _, err := fmt.Sscanf(answer, "%d", &choice); err != nil {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if q.IsCorrect(choice - 1) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %d) %s\n", q.CorrectIndex+1, q.Options[q.CorrectIndex])
		}
		fmt.Println()
	}

	if !showAnswers {
		score := session.Score(correct, count)
		fmt.Printf("── Summary: %d/%d correct, IQ %d (%s) ──\n", correct, count, score, session.Tier(score))
	}
	return nil
}
