package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cogsimlab/saffran/analysis"
	"github.com/cogsimlab/saffran/datarecording"
	"github.com/cogsimlab/saffran/monitoring"
	"github.com/cogsimlab/saffran/runner"
)

var runFlags struct {
	repeats      int
	participants int
	workers      int
	seed         int64
	outputDir    string
	sqlitePath   string
	monitorPort  int
	openBrowser  bool
	correctSlip  bool
	sigSlip      bool
	verbose      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full participant-type sweep and write the report tables.",
	RunE:  runSweep,
}

func init() {
	runCmd.Flags().IntVar(&runFlags.repeats, "repeats",
		envInt("SAFFRAN_REPEATS", runner.DefaultRepeats),
		"repeats per participant type")
	runCmd.Flags().IntVar(&runFlags.participants, "participants",
		envInt("SAFFRAN_PARTICIPANTS", runner.DefaultParticipants),
		"participants per experiment")
	runCmd.Flags().IntVar(&runFlags.workers, "workers",
		envInt("SAFFRAN_WORKERS", 0),
		"concurrent protocol runs (0 = one per CPU)")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 0,
		"random seed (0 = from the wall clock)")
	runCmd.Flags().StringVar(&runFlags.outputDir, "output-dir", ".",
		"directory for the CSV report tables")
	runCmd.Flags().StringVar(&runFlags.sqlitePath, "sqlite", "",
		"SQLite database path without suffix (empty = generated name)")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", -1,
		"serve progress over HTTP on this port (-1 = disabled, 0 = any)")
	runCmd.Flags().BoolVar(&runFlags.openBrowser, "open-browser", false,
		"open the progress endpoint in a browser")
	runCmd.Flags().BoolVar(&runFlags.correctSlip, "correct-novel-word-slip",
		false,
		"use the experiment 2 novel-word mean for the fourth fit point "+
			"instead of reproducing the historical indexing slip")
	runCmd.Flags().BoolVar(&runFlags.sigSlip, "reproduce-significance-slip",
		false,
		"store t and p values the way published runs did: experiment 2's "+
			"values in the experiment 1 slot, zeros in the experiment 2 slot")
	runCmd.Flags().BoolVarP(&runFlags.verbose, "verbose", "v", false,
		"log every completed run")

	rootCmd.AddCommand(runCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := runner.Config{
		Repeats:      runFlags.repeats,
		Participants: runFlags.participants,
		Workers:      runFlags.workers,
		Seed:         runFlags.seed,
	}

	if runFlags.verbose {
		cfg.Progress = os.Stderr
	}

	var monitor *monitoring.Monitor
	if runFlags.monitorPort >= 0 {
		monitor = monitoring.NewMonitor()
		cfg.OnRunComplete = monitor.CompleteRun
	}

	sweep := runner.NewSweep(cfg)

	if monitor != nil {
		monitor.RegisterSweep(sweep.TotalRuns())
		err := monitor.StartServer(runFlags.monitorPort, runFlags.openBrowser)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Running %d protocol runs\n", sweep.TotalRuns())

	results := sweep.Run()

	writer := datarecording.NewSQLiteWriter(runFlags.sqlitePath)
	writer.CreateTable("participant_data", datarecording.ParticipantRow{})

	rows := make([]datarecording.ParticipantRow, len(results))
	for i, r := range results {
		rows[i] = datarecording.RowFromResult(r)
		writer.Insert("participant_data", rows[i])
	}
	writer.Flush()

	summaries := analysis.Summarise(results, analysis.Options{
		CorrectNovelWordSlip:      runFlags.correctSlip,
		ReproduceSignificanceSlip: runFlags.sigSlip,
	})

	return writeReports(runFlags.outputDir, rows, summaries)
}

type report struct {
	filename string
	write    func(f *os.File) error
}

func writeReports(
	dir string,
	rows []datarecording.ParticipantRow,
	summaries []analysis.TypeSummary,
) error {
	reports := []report{
		{"participant_data.csv", func(f *os.File) error {
			return datarecording.WriteParticipantData(f, rows)
		}},
		{"repeat_metrics.csv", func(f *os.File) error {
			return datarecording.WriteRepeatMetrics(f, summaries)
		}},
		{"type_averages.csv", func(f *os.File) error {
			return datarecording.WriteTypeAverages(f, summaries)
		}},
		{"repeat_fits.csv", func(f *os.File) error {
			return datarecording.WriteRepeatFits(f, summaries)
		}},
		{"mean_fits.csv", func(f *os.File) error {
			return datarecording.WriteMeanFits(f, summaries)
		}},
	}

	for _, r := range reports {
		path := filepath.Join(dir, r.filename)

		f, err := os.Create(path)
		if err != nil {
			return err
		}

		if err := r.write(f); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	return nil
}
