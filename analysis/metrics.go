// Package analysis reduces raw per-participant latencies into the summary
// tables the simulation reports: descriptive statistics and paired
// significance per experiment repeat, per-type means with standard errors,
// and goodness of fit against the replicated study's listening times.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// referenceListeningTimes are the mean listening times, in seconds, reported
// by the replicated study: experiment 1 familiar, experiment 1 novel,
// experiment 2 familiar, experiment 2 novel.
var referenceListeningTimes = [4]float64{7.97, 8.85, 6.77, 7.60}

// ExperimentMetrics summarises one experiment within one repeat: the
// familiar- and novel-word latency distributions across all participants,
// and the paired significance of their difference.
type ExperimentMetrics struct {
	FamiliarMean float64
	FamiliarSD   float64
	NovelMean    float64
	NovelSD      float64
	T            float64
	P            float64
}

// FitMetrics measures how well one repeat's latency means track the
// reference listening times.
type FitMetrics struct {
	RSquared float64
	RMSE     float64
}

// ExperimentSummary aggregates one experiment's repeat means for a
// participant type.
type ExperimentSummary struct {
	FamiliarMean float64
	FamiliarSE   float64
	NovelMean    float64
	NovelSE      float64
}

// Options controls aggregation.
type Options struct {
	// CorrectNovelWordSlip substitutes the experiment 2 novel-word mean for
	// the fourth model data point of the fit. Published runs of this
	// simulation reused the experiment 1 novel-word mean there, almost
	// certainly an indexing slip; the reproducing behaviour (false) stays
	// the default so existing numbers remain comparable.
	CorrectNovelWordSlip bool

	// ReproduceSignificanceSlip stores each repeat's t and p values the way
	// published runs did: the experiment 1 slot receives experiment 2's
	// values (each experiment overwrote the same slot) and the experiment 2
	// slot is left at zero. The default (false) reports each experiment's
	// own t and p.
	ReproduceSignificanceSlip bool
}

func experimentMetrics(familiar, novel []float64) ExperimentMetrics {
	m := ExperimentMetrics{
		FamiliarMean: stat.Mean(familiar, nil),
		FamiliarSD:   stat.StdDev(familiar, nil),
		NovelMean:    stat.Mean(novel, nil),
		NovelSD:      stat.StdDev(novel, nil),
	}
	m.T, m.P = pairedT(familiar, novel)

	return m
}

// pairedT returns the absolute paired t statistic between two equal-length
// samples and its two-sided p value.
func pairedT(a, b []float64) (t, p float64) {
	n := len(a)
	diffs := make([]float64, n)
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	mean := stat.Mean(diffs, nil)
	se := stat.StdDev(diffs, nil) / math.Sqrt(float64(n))

	if se == 0 {
		if mean == 0 {
			return 0, 1
		}
		return math.Inf(1), 0
	}

	t = math.Abs(mean / se)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p = 2 * dist.CDF(-t)

	return t, p
}

// fit compares the repeat's four latency means against the reference
// listening times.
func fit(expt1, expt2 ExperimentMetrics, opts Options) FitMetrics {
	novelPoint := expt1.NovelMean
	if opts.CorrectNovelWordSlip {
		novelPoint = expt2.NovelMean
	}

	human := referenceListeningTimes[:]
	model := []float64{
		expt1.FamiliarMean,
		expt1.NovelMean,
		expt2.FamiliarMean,
		novelPoint,
	}

	r := stat.Correlation(human, model, nil)

	// The squared error is averaged over all eight plotted points, human and
	// model alike.
	var sumSquares float64
	for i := range human {
		diff := human[i] - model[i]
		sumSquares += diff * diff
	}
	rmse := math.Sqrt(sumSquares / 8)

	return FitMetrics{RSquared: r * r, RMSE: rmse}
}
