package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cogsimlab/saffran/chrest"
	"github.com/cogsimlab/saffran/protocol"
	"github.com/cogsimlab/saffran/stim"
	"github.com/cogsimlab/saffran/timing"
)

var singleFlags struct {
	learningWords []string
	testWords     []string
	traceDecay    int
	discTime      int
	familTime     int
	seed          int64
}

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Run one protocol run and print the per-word latencies.",
	RunE:  runSingle,
}

func init() {
	singleCmd.Flags().StringSliceVar(&singleFlags.learningWords,
		"learning-words",
		[]string{"tupiro", "golabu", "bidaku", "padoti"},
		"learning-set vocabulary")
	singleCmd.Flags().StringSliceVar(&singleFlags.testWords, "test-words",
		[]string{"tupiro", "golabu", "dapiku", "tilado"},
		"test words, presented in order")
	singleCmd.Flags().IntVar(&singleFlags.traceDecay, "trace-decay", 800,
		"phonological-store trace decay in ms")
	singleCmd.Flags().IntVar(&singleFlags.discTime, "discrimination-time",
		9000, "model discrimination time in ms")
	singleCmd.Flags().IntVar(&singleFlags.familTime, "familiarisation-time",
		1500, "model familiarisation time in ms")
	singleCmd.Flags().Int64Var(&singleFlags.seed, "seed", 0,
		"random seed (0 = from the wall clock)")

	rootCmd.AddCommand(singleCmd)
}

func runSingle(cmd *cobra.Command, args []string) error {
	words := stim.Set{
		Learning: toWords(singleFlags.learningWords),
		Test:     toWords(singleFlags.testWords),
	}

	cfg := protocol.Config{
		Words:      words,
		TraceDecay: timing.Tick(singleFlags.traceDecay),
		Participant: chrest.NewModel(
			timing.Tick(singleFlags.discTime),
			timing.Tick(singleFlags.familTime),
		),
	}

	if singleFlags.seed != 0 {
		cfg.Rand = rand.New(rand.NewSource(singleFlags.seed))
	}

	latencies := protocol.New(cfg).Run()

	for _, word := range words.Test {
		fmt.Printf("%s\t%.3f s\n", word, latencies[word])
	}

	return nil
}

func toWords(raw []string) []stim.Word {
	words := make([]stim.Word, len(raw))
	for i, w := range raw {
		words[i] = stim.Word(w)
	}
	return words
}
