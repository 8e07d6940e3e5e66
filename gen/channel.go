package gen

import "gonum.org/v1/gonum/spatial/r3"

// Particle is one initial- or final-state particle of an event.
type Particle struct {
	PID       int     `json:"pid"`    // PDG particle code
	Energy    float64 `json:"energy"` // total energy in MeV
	Direction r3.Vec  `json:"direction"`
}

// Event is a single simulated interaction. Records are handed to the
// caller and owned by it thereafter.
type Event struct {
	Code     int        `json:"code"` // channel interaction code (NUANCE convention)
	Time     float64    `json:"time"` // absolute time within the simulation window, in ms
	Incoming []Particle `json:"incoming"`
	Outgoing []Particle `json:"outgoing"`
}

// Channel is the capability interface of one interaction channel.
//
// All methods except GenerateEvent must be referentially transparent
// (same inputs, same outputs): the engine caches and re-evaluates them
// freely during integration and sampling.
type Channel interface {
	// Name tags log lines for this channel.
	Name() string

	// DSigmaDE is the differential cross section dσ/dE(eNu, eE) over the
	// outgoing-lepton total energy, for incoming energy eNu. Must be
	// non-negative everywhere inside the kinematic bounds.
	DSigmaDE(eNu, eE float64) float64

	// DSigmaDCosT is the angular distribution over the scattering cosine,
	// normalized to integrate near unity over [-1, 1].
	DSigmaDCosT(eNu, cosT float64) float64

	// BoundsE returns the kinematically allowed outgoing-energy interval
	// for incoming energy eNu. min > max is a contract violation and
	// aborts the run.
	BoundsE(eNu float64) (min, max float64)

	// BoundsENu returns the incoming-energy interval the channel is
	// defined over (threshold to spectrum cutoff).
	BoundsENu() (min, max float64)

	// IntegrationPoints suggests interior eE positions the quadrature
	// should split the integration interval at (e.g. near-singular
	// points). May return nil for a smooth cross section.
	IntegrationPoints(eNu float64) []float64

	// GenerateEvent materializes the final state for a sampled incoming
	// energy and outgoing direction. The engine fills in the event time.
	GenerateEvent(eNu float64, dir r3.Vec) Event
}
