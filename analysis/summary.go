package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cogsimlab/saffran/runner"
)

// RepeatMetrics summarises one repeat of a participant type: both
// experiments plus the repeat's model fit.
type RepeatMetrics struct {
	Repeat      int
	Experiments [2]ExperimentMetrics
	Fit         FitMetrics
}

// TypeSummary aggregates everything reported for one participant type.
type TypeSummary struct {
	Type        runner.ParticipantType
	Repeats     []RepeatMetrics
	Experiments [2]ExperimentSummary
	MeanFit     FitMetrics
}

// Summarise reduces raw sweep results to one summary per participant type,
// in first-seen order.
func Summarise(
	results []runner.ParticipantResult,
	opts Options,
) []TypeSummary {
	var order []runner.ParticipantType
	byType := make(map[runner.ParticipantType][]runner.ParticipantResult)

	for _, r := range results {
		if _, seen := byType[r.Type]; !seen {
			order = append(order, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}

	summaries := make([]TypeSummary, 0, len(order))
	for _, t := range order {
		summaries = append(summaries, summariseType(t, byType[t], opts))
	}

	return summaries
}

func summariseType(
	t runner.ParticipantType,
	results []runner.ParticipantResult,
	opts Options,
) TypeSummary {
	byRepeat := make(map[int][]runner.ParticipantResult)
	for _, r := range results {
		byRepeat[r.Repeat] = append(byRepeat[r.Repeat], r)
	}

	repeats := make([]int, 0, len(byRepeat))
	for repeat := range byRepeat {
		repeats = append(repeats, repeat)
	}
	sort.Ints(repeats)

	summary := TypeSummary{Type: t}

	// Per-experiment repeat means, collected for the type-level summary.
	var familiarMeans, novelMeans [2][]float64

	for _, repeat := range repeats {
		rm := RepeatMetrics{Repeat: repeat}

		for expt := 0; expt < 2; expt++ {
			var familiar, novel []float64

			for _, r := range byRepeat[repeat] {
				if r.Experiment != expt+1 {
					continue
				}
				familiar = append(familiar, r.Familiar[0], r.Familiar[1])
				novel = append(novel, r.Novel[0], r.Novel[1])
			}

			rm.Experiments[expt] = experimentMetrics(familiar, novel)
			familiarMeans[expt] = append(
				familiarMeans[expt], rm.Experiments[expt].FamiliarMean)
			novelMeans[expt] = append(
				novelMeans[expt], rm.Experiments[expt].NovelMean)
		}

		if opts.ReproduceSignificanceSlip {
			rm.Experiments[0].T = rm.Experiments[1].T
			rm.Experiments[0].P = rm.Experiments[1].P
			rm.Experiments[1].T = 0
			rm.Experiments[1].P = 0
		}

		rm.Fit = fit(rm.Experiments[0], rm.Experiments[1], opts)
		summary.Repeats = append(summary.Repeats, rm)
	}

	for expt := 0; expt < 2; expt++ {
		n := math.Sqrt(float64(len(familiarMeans[expt])))
		summary.Experiments[expt] = ExperimentSummary{
			FamiliarMean: stat.Mean(familiarMeans[expt], nil),
			FamiliarSE:   stat.StdDev(familiarMeans[expt], nil) / n,
			NovelMean:    stat.Mean(novelMeans[expt], nil),
			NovelSE:      stat.StdDev(novelMeans[expt], nil) / n,
		}
	}

	summary.MeanFit = meanFit(summary.Repeats)

	return summary
}

func meanFit(repeats []RepeatMetrics) FitMetrics {
	rsquares := make([]float64, len(repeats))
	rmses := make([]float64, len(repeats))

	for i, rm := range repeats {
		rsquares[i] = rm.Fit.RSquared
		rmses[i] = rm.Fit.RMSE
	}

	return FitMetrics{
		RSquared: stat.Mean(rsquares, nil),
		RMSE:     stat.Mean(rmses, nil),
	}
}
