// Package runner sweeps the simulated participant population: every
// combination of model parameters, repeated, across both experiments and all
// participants, collecting one latency record per protocol run.
package runner

import "github.com/cogsimlab/saffran/timing"

// A ParticipantType is one combination of the three swept model parameters.
type ParticipantType struct {
	// TraceDecay is the phonological-store trace lifetime.
	TraceDecay timing.Tick

	// DiscriminationTime is the participant's cost of learning a new chunk.
	DiscriminationTime timing.Tick

	// FamiliarisationTime is the participant's cost of extending a known
	// chunk.
	FamiliarisationTime timing.Tick
}

var (
	traceDecays          = []timing.Tick{600, 800, 1000}
	discriminationTimes  = []timing.Tick{8000, 9000, 10000}
	familiarisationTimes = []timing.Tick{1000, 1500, 2000}
)

// ParticipantTypes enumerates the full parameter sweep in a fixed order:
// trace decay varies slowest, familiarisation time fastest.
func ParticipantTypes() []ParticipantType {
	var types []ParticipantType

	for _, decay := range traceDecays {
		for _, disc := range discriminationTimes {
			for _, famil := range familiarisationTimes {
				types = append(types, ParticipantType{
					TraceDecay:          decay,
					DiscriminationTime:  disc,
					FamiliarisationTime: famil,
				})
			}
		}
	}

	return types
}
