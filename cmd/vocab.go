package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/config"
	"github.com/abhisek/careerlab/internal/quiz"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Play the vocabulary quiz in the console",
	RunE:  runVocab,
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the question bank by category",
	RunE:  runVocabList,
}

func init() {
	vocabCmd.Flags().Int("size", 0, "Questions per round (default from config)")

	vocabCmd.AddCommand(vocabListCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	files, _ := cmd.Flags().GetStringArray("import")
	bank, err := loadBank(logger, files)
	if err != nil {
		return err
	}

	size := cfg.QuizSize
	if n, _ := cmd.Flags().GetInt("size"); n > 0 {
		size = n
	} else if n < 0 {
		return fmt.Errorf("--size must be positive, got %d", n)
	}

	game := quiz.NewGame(bank, newRNG(cfg.Seed, streamQuiz), quiz.WithSize(size))
	logger.Debug("vocab session", zap.Int("bank", bank.Len()), zap.Int(config.KeyQuizSize, size))

	err = quiz.NewConsole(game, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	if errors.Is(err, quiz.ErrInputClosed) {
		fmt.Fprintln(os.Stderr)
		return nil
	}
	return err
}

func runVocabList(cmd *cobra.Command, args []string) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	files, _ := cmd.Flags().GetStringArray("import")
	bank, err := loadBank(logger, files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range quiz.Categories {
		questions := bank.Category(c)
		fmt.Fprintf(out, "%s (%d)\n", c.Label(), len(questions))
		for i, q := range questions {
			fmt.Fprintf(out, "  %2d. %s\n      answer: %s\n", i+1, q.Prompt, q.Answer)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%d questions\n", bank.Len())
	return nil
}
