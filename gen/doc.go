// Package gen provides the core event-generation engine for sntools.
//
// # Reading Guide
//
// Start with these three files to understand the generation pipeline:
//   - channel.go: the Channel interface every interaction channel implements,
//     and the Event/Particle records handed to the caller
//   - rate.go: the double-differential rate integral and the interpolated
//     time-dependent rate curve
//   - generate.go: GenEvents, the entry point that bins the time window,
//     draws per-bin Poisson counts and materializes individual events
//
// # Architecture
//
// The engine is generic over two capability interfaces: Channel (differential
// cross section, angular distribution, kinematic bounds, final-state builder)
// and Flux (time-dependent energy spectrum of the incoming neutrinos).
// Concrete implementations live in sub- and sibling packages:
//   - gen/ibd: the inverse-beta-decay channel (Strumia/Vissani)
//   - flux: constant and pinched-thermal flux models
//
// All per-run state (flux evaluation cache, RNG, scale) is held by an
// explicit run context created inside GenEvents; nothing is package-global,
// so repeated or interleaved runs cannot contaminate each other.
//
// # Reproducibility
//
// A run draws every random number from a single seeded source, in a fixed
// order: one Poisson draw per time bin, then per event an energy draw, a
// scattering-cosine draw, an azimuth draw and a time jitter. Two runs with
// the same seed and inputs produce identical event lists.
package gen
