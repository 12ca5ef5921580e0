package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/quiz"
	"github.com/abhisek/careerlab/internal/store"
)

// Independent PCG streams so the dataset and the quiz draw do not share state.
const (
	streamJobs uint64 = 1
	streamQuiz uint64 = 2
)

// newRNG returns a generator for one stream of the configured seed.
func newRNG(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, stream))
}

// openStore opens the dataset cache at the resolved path.
func openStore(logger *zap.Logger) (*store.Store, error) {
	path, err := resolveDataPath()
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}
	return store.Open(path, logger)
}

// loadPostings returns the cached dataset, generating it on first use.
func loadPostings(logger *zap.Logger, seed uint64) ([]jobs.Posting, error) {
	st, err := openStore(logger)
	if err != nil {
		return nil, err
	}
	postings, err := st.LoadOrGenerate(cfg.JobCount, jobs.NewGenerator(newRNG(seed, streamJobs)))
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Debug("dataset ready", zap.String("path", st.Path()), zap.Int("count", len(postings)))
	return postings, nil
}

// loadBank builds the seeded question bank and imports any extra files.
func loadBank(logger *zap.Logger, files []string) (*quiz.Bank, error) {
	bank := quiz.DefaultBank()
	for _, path := range files {
		n, err := importFile(bank, path)
		if err != nil {
			return nil, err
		}
		logger.Info("imported questions", zap.String("path", path), zap.Int("count", n))
	}
	return bank, nil
}

func importFile(bank *quiz.Bank, path string) (int, error) {
	format, err := quiz.FormatFromPath(path)
	if err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := bank.Import(f, format)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	return n, nil
}
