package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/app"
	"github.com/abhisek/careerlab/internal/logging"
	"github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/screens/home"
)

// logFileName sits next to the dataset unless --log-file is set.
const logFileName = "careerlab.log"

// runApp loads the dataset and question bank, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	dataPath, err := resolveDataPath()
	if err != nil {
		return fmt.Errorf("resolve data path: %w", err)
	}
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dataPath), logFileName)
	}

	logger, closeLog, err := logging.NewFile(cfg.LogLevel, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	postings, err := loadPostings(logger, cfg.Seed)
	if err != nil {
		return err
	}

	files, _ := cmd.Flags().GetStringArray("import")
	bank, err := loadBank(logger, files)
	if err != nil {
		return err
	}
	rng := newRNG(cfg.Seed, streamQuiz)
	size := cfg.QuizSize

	logger.Info("starting tui", zap.Int("jobs", len(postings)), zap.Int("questions", bank.Len()))
	return app.Run(home.Deps{
		Postings: postings,
		NewGame: func() *quiz.Game {
			return quiz.NewGame(bank, rng, quiz.WithSize(size))
		},
		Logger: logger,
	})
}
