package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rankit/config"
	"github.com/katalvlaran/rankit/rank"
)

func runCmd() *cobra.Command {
	var matrixPath string
	var configPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve an N×N observation-count matrix and recommend the next comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(matrixPath, configPath, jsonOut)
		},
	}
	cmd.Flags().StringVar(&matrixPath, "matrix", "", "path to a CSV file holding the N×N observation-count matrix")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file overriding the default numeric thresholds")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the recommendation as JSON instead of formatted text")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func runRank(matrixPath, configPath string, jsonOut bool) error {
	start := time.Now()
	runID := uuid.New()
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("run_id", runID.String()).Logger()
	logger.Info().Str("matrix", matrixPath).Msg("rankctl: run started")

	m, err := readMatrix(matrixPath)
	if err != nil {
		return fmt.Errorf("rankctl: %w", err)
	}

	thresholds := config.Default()
	if configPath != "" {
		thresholds, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("rankctl: %w", err)
		}
	}

	solver, err := rank.New(len(m), rank.WithThresholds(thresholds), rank.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("rankctl: %w", err)
	}

	rec, err := solver.Run(m)
	if err != nil {
		return fmt.Errorf("rankctl: %w", err)
	}

	logger.Info().
		Int("recommended_i", rec.Pair[0]).
		Int("recommended_j", rec.Pair[1]).
		Dur("elapsed", time.Since(start)).
		Msg("rankctl: run finished")

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rec)
	}
	printRecommendation(rec)
	return nil
}

func printRecommendation(rec rank.Recommendation) {
	fmt.Printf("recommended next comparison: item %d vs item %d\n", rec.Pair[0], rec.Pair[1])
	fmt.Println("posterior:")
	for i := range rec.Means {
		fmt.Printf("  item %d: mean=%.4f variance=%.4f\n", i, rec.Means[i], rec.Variances[i])
	}
	fmt.Println("win probability P[i][j]:")
	for i, row := range rec.WinProbability {
		for j, p := range row {
			if i == j {
				continue
			}
			fmt.Printf("  P[%d][%d]=%.4f\n", i, j, p)
		}
	}
	fmt.Println("expected information gain:")
	for i, row := range rec.Gain {
		for j, gain := range row {
			if gain == 0 {
				continue
			}
			fmt.Printf("  gain[%d][%d]=%.4f\n", i, j, gain)
		}
	}
}

// readMatrix parses a CSV file of non-negative integers into an N×N
// observation-count matrix, one row per line.
func readMatrix(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read matrix %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse matrix %s: %w", path, err)
	}

	m := make([][]int, len(rows))
	for i, row := range rows {
		m[i] = make([]int, len(row))
		for j, cell := range row {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("parse matrix %s: row %d col %d: %w", path, i, j, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

