// Package datarecording stores simulation output. Raw per-run latencies go
// to a SQLite database for later querying; the aggregated report tables are
// emitted as CSV.
package datarecording

import "github.com/cogsimlab/saffran/runner"

// A ParticipantRow is one protocol run flattened for storage. All times are
// in seconds except the three parameter columns, which are in ticks.
type ParticipantRow struct {
	TraceDecay          int
	DiscriminationTime  int
	FamiliarisationTime int
	Repeat              int
	Experiment          int
	Participant         int
	FamiliarWord1Time   float64
	FamiliarWord2Time   float64
	NovelWord1Time      float64
	NovelWord2Time      float64
}

// RowFromResult flattens a sweep result.
func RowFromResult(r runner.ParticipantResult) ParticipantRow {
	return ParticipantRow{
		TraceDecay:          int(r.Type.TraceDecay),
		DiscriminationTime:  int(r.Type.DiscriminationTime),
		FamiliarisationTime: int(r.Type.FamiliarisationTime),
		Repeat:              r.Repeat,
		Experiment:          r.Experiment,
		Participant:         r.Participant,
		FamiliarWord1Time:   r.Familiar[0],
		FamiliarWord2Time:   r.Familiar[1],
		NovelWord1Time:      r.Novel[0],
		NovelWord2Time:      r.Novel[1],
	}
}
