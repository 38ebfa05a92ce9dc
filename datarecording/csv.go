package datarecording

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cogsimlab/saffran/analysis"
	"github.com/cogsimlab/saffran/runner"
)

// WriteParticipantData emits the raw per-run latencies, the data from which
// every other table is derived.
func WriteParticipantData(w io.Writer, rows []ParticipantRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trace_decay_t", "disc_t", "famil_t", "repeat", "expt", "prt",
		"fml_wrd_1_t", "fml_wrd_2_t", "nvl_wrd_1_t", "nvl_wrd_2_t",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			itoa(row.TraceDecay),
			itoa(row.DiscriminationTime),
			itoa(row.FamiliarisationTime),
			itoa(row.Repeat),
			itoa(row.Experiment),
			itoa(row.Participant),
			ftoa(row.FamiliarWord1Time),
			ftoa(row.FamiliarWord2Time),
			ftoa(row.NovelWord1Time),
			ftoa(row.NovelWord2Time),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteRepeatMetrics emits per-repeat, per-experiment descriptive statistics
// and paired significance.
func WriteRepeatMetrics(w io.Writer, summaries []analysis.TypeSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trace_decay_t", "disc_t", "famil_t", "repeat", "expt",
		"fml_wrd_t_mean", "fml_wrd_t_sd", "nvl_wrd_t_mean", "nvl_wrd_t_sd",
		"t_value", "p_value",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, summary := range summaries {
		for _, repeat := range summary.Repeats {
			for expt := 0; expt < 2; expt++ {
				m := repeat.Experiments[expt]
				record := append(typeColumns(summary.Type),
					itoa(repeat.Repeat),
					itoa(expt+1),
					ftoa(m.FamiliarMean),
					ftoa(m.FamiliarSD),
					ftoa(m.NovelMean),
					ftoa(m.NovelSD),
					ftoa(m.T),
					ftoa(m.P),
				)
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteTypeAverages emits per-type, per-experiment means of the repeat means
// with their standard errors.
func WriteTypeAverages(w io.Writer, summaries []analysis.TypeSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trace_decay_t", "disc_t", "famil_t", "expt",
		"fml_wrd_avg", "fml_wrd_se", "nvl_wrd_avg", "nvl_wrd_se",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, summary := range summaries {
		for expt := 0; expt < 2; expt++ {
			s := summary.Experiments[expt]
			record := append(typeColumns(summary.Type),
				itoa(expt+1),
				ftoa(s.FamiliarMean),
				ftoa(s.FamiliarSE),
				ftoa(s.NovelMean),
				ftoa(s.NovelSE),
			)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteRepeatFits emits the model fit of every repeat.
func WriteRepeatFits(w io.Writer, summaries []analysis.TypeSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trace_decay_t", "disc_t", "famil_t", "repeat", "r_2", "rmse",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, summary := range summaries {
		for _, repeat := range summary.Repeats {
			record := append(typeColumns(summary.Type),
				itoa(repeat.Repeat),
				ftoa(repeat.Fit.RSquared),
				ftoa(repeat.Fit.RMSE),
			)
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteMeanFits emits each participant type's fit averaged over repeats.
func WriteMeanFits(w io.Writer, summaries []analysis.TypeSummary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"trace_decay_t", "disc_t", "famil_t", "avg_r_2", "avg_rmse",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, summary := range summaries {
		record := append(typeColumns(summary.Type),
			ftoa(summary.MeanFit.RSquared),
			ftoa(summary.MeanFit.RMSE),
		)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func typeColumns(t runner.ParticipantType) []string {
	return []string{
		itoa(int(t.TraceDecay)),
		itoa(int(t.DiscriminationTime)),
		itoa(int(t.FamiliarisationTime)),
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
