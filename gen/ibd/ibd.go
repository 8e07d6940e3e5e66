// Package ibd implements the inverse-beta-decay interaction channel
// (ν̄e + p → n + e⁺) on free protons, following Strumia and Vissani
// (2003), arXiv:astro-ph/0302055.
package ibd

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/svalder/sntools/gen"
)

// Physical constants, in MeV where dimensional.
const (
	mN  = 939.5654    // neutron mass
	mP  = 938.2721    // proton mass
	mE  = 0.5109989   // electron mass
	mPi = 139.57018   // pion mass
	gF  = 1.16637e-11 // Fermi coupling constant (MeV^-2)

	cosThetaC = 0.9746 // quark-mixing (Cabibbo) correction
	eNuMax    = 100.0  // upper end of the sampled neutrino spectrum
)

var (
	delta = mN - mP
	mAvg  = (mP + mN) / 2

	// deltaCM shifts between the neutrino energy and the positron energy
	// in the lab-frame two-body kinematics.
	deltaCM = (mN*mN - mP*mP - mE*mE) / (2 * mP)

	// eThr is the threshold neutrino energy for inverse beta decay.
	eThr = ((mN+mE)*(mN+mE) - mP*mP) / (2 * mP)
)

// PDG particle codes and the NUANCE interaction code for this channel.
const (
	pidPositron = -11
	pidNuEBar   = -12
	pidProton   = 2212
	nuanceCode  = 1001
)

// TargetsPerMolecule is the number of free protons per water molecule.
const TargetsPerMolecule = 2

// Channel is the inverse-beta-decay channel. The zero value is ready to
// use; it holds no state.
type Channel struct{}

func New() Channel { return Channel{} }

func (Channel) Name() string { return "ibd" }

// mandelstamT is the four-momentum transfer invariant t(eNu, eE).
func mandelstamT(eNu, eE float64) float64 {
	return mN*mN - mP*mP - 2*mP*(eNu-eE)
}

// formFactors returns the vector (f1, f2) and axial (g1, g2) nucleon form
// factors at the kinematic point (eNu, eE), with dipole vector-mass and
// axial-mass scales of 710000 and 1000000 MeV².
func formFactors(eNu, eE float64) (f1, f2, g1, g2 float64) {
	t := mandelstamT(eNu, eE)
	x := t / (4 * mAvg * mAvg)
	y := 1 - t/710000
	z := 1 - t/1000000
	f1 = (1 - 4.706*x) / ((1 - x) * y * y)
	f2 = 3.706 / ((1 - x) * y * y)
	g1 = -1.27 / (z * z)
	g2 = 2 * g1 * mAvg * mAvg / (mPi*mPi - t)
	return f1, f2, g1, g2
}

func sMinusU(eNu, eE float64) float64 {
	return 2*mP*(eNu+eE) - mE*mE
}

// msqLeading is the squared matrix element |M|² = A - (s-u)B + (s-u)²C in
// the leading-order approximation of Strumia/Vissani eq. 6.
func msqLeading(eNu, eE float64) float64 {
	t := mandelstamT(eNu, eE)
	f1, f2, g1, _ := formFactors(eNu, eE)

	a := mAvg*mAvg*(f1*f1-g1*g1)*(t-mE*mE) -
		mAvg*mAvg*delta*delta*(f1*f1+g1*g1) -
		2*mE*mE*mAvg*delta*g1*(f1+f2)
	b := t * g1 * (f1 + f2)
	c := (f1*f1 + g1*g1) / 4

	su := sMinusU(eNu, eE)
	return a - su*b + su*su*c
}

// msqPrecise is the full squared matrix element of Strumia/Vissani eq. 5,
// without the leading-order truncation. Kept for cross-checking the
// approximation; the cross section uses msqLeading.
func msqPrecise(eNu, eE float64) float64 {
	t := mandelstamT(eNu, eE)
	f1, f2, g1, g2 := formFactors(eNu, eE)

	a := 1.0 / 16 * ((t-mE*mE)*(4*f1*f1*(4*mAvg*mAvg+t+mE*mE)+
		4*g1*g1*(-4*mAvg*mAvg+t+mE*mE)+
		f2*f2*(t*t/(mAvg*mAvg)+4*t+4*mE*mE)+
		4*mE*mE*t*g2*g2/(mAvg*mAvg)+
		8*f1*f2*(2*t+mE*mE)+
		16*mE*mE*g1*g2) -
		delta*delta*((4*f1*f1+t*f2*f2/(mAvg*mAvg))*(4*mAvg*mAvg+t-mE*mE)+
			4*g1*g1*(4*mAvg*mAvg-t+mE*mE)+
			4*mE*mE*g2*g2*(t-mE*mE)/(mAvg*mAvg)+
			8*f1*f2*(2*t-mE*mE)+
			16*mE*mE*g1*g2) -
		32*mE*mE*mAvg*delta*g1*(f1+f2))
	b := 1.0 / 16 * (16*t*g1*(f1+f2) +
		4*mE*mE*delta*(f2*f2+f1*f2+2*g1*g2)/mAvg)
	c := 1.0 / 16 * (4*(f1*f1+g1*g1) - t*f2*f2/(mAvg*mAvg))

	su := sMinusU(eNu, eE)
	return a - su*b + su*su*c
}

// DSigmaDE is the differential cross section dσ/dE(eNu, eE) over the
// positron total energy, in MeV⁻³ (natural units; the caller's scale
// factor carries the unit conversion).
func (Channel) DSigmaDE(eNu, eE float64) float64 {
	return 2 * mP * gF * gF * cosThetaC * cosThetaC / (8 * math.Pi * mP * mP * eNu * eNu) * msqLeading(eNu, eE)
}

// DSigmaDCosT is the probability distribution of the positron emission
// angle: a quadratic in cosT with energy-dependent coefficients fit
// empirically (Vissani via Ishino's Super-K code), normalized to
// integrate to unity over [-1, 1].
func (Channel) DSigmaDCosT(eNu, cosT float64) float64 {
	e := eNu / 100
	c1 := -0.05396 + 0.35824*e + 0.03309*e*e
	c2 := 0.00050 - 0.02390*e + 0.14537*e*e
	return 0.5 + c1*cosT + c2*(cosT*cosT-1.0/3)
}

// Center-of-mass frame kinematics for the outgoing positron.
func mandelstamS(eNu float64) float64 {
	return 2*mP*eNu + mP*mP
}

func pEcm(eNu float64) float64 {
	s := mandelstamS(eNu)
	return math.Sqrt((s-(mN-mE)*(mN-mE))*(s-(mN+mE)*(mN+mE))) / (2 * math.Sqrt(s))
}

func eEcm(eNu float64) float64 {
	s := mandelstamS(eNu)
	return (s - mN*mN + mE*mE) / (2 * math.Sqrt(s))
}

// eEMin and eEMax are the lab-frame positron energy range, obtained by
// boosting the center-of-mass energy ± momentum back to the lab.
func eEMin(eNu float64) float64 {
	return eNu - deltaCM - eNu/math.Sqrt(mandelstamS(eNu))*(eEcm(eNu)+pEcm(eNu))
}

func eEMax(eNu float64) float64 {
	return eNu - deltaCM - eNu/math.Sqrt(mandelstamS(eNu))*(eEcm(eNu)-pEcm(eNu))
}

// BoundsE returns the positron-energy integration interval. The +1 shift
// converts the kinetic-energy-based kinematics into total-energy bounds.
func (Channel) BoundsE(eNu float64) (float64, float64) {
	return eEMin(eNu) + 1, eEMax(eNu) + 1
}

// BoundsENu returns the neutrino-energy interval, threshold to cutoff.
func (Channel) BoundsENu() (float64, float64) {
	return eThr, eNuMax
}

// IntegrationPoints returns no interior split points: the cross section
// is smooth across the whole allowed eE range.
func (Channel) IntegrationPoints(eNu float64) []float64 {
	return nil
}

// positronEnergy solves the two-body lab-frame kinematics for the
// positron total energy at scattering cosine cosT.
func positronEnergy(eNu, cosT float64) float64 {
	epsilon := eNu / mP
	kappa := (1+epsilon)*(1+epsilon) - (epsilon*cosT)*(epsilon*cosT)
	return ((eNu-deltaCM)*(1+epsilon) + epsilon*cosT*math.Sqrt((eNu-deltaCM)*(eNu-deltaCM)-mE*mE*kappa)) / kappa
}

// GenerateEvent builds the event record for a sampled neutrino energy and
// positron direction. The incoming neutrino moves along +z; the positron
// energy follows from the scattering cosine.
func (Channel) GenerateEvent(eNu float64, dir r3.Vec) gen.Event {
	return gen.Event{
		Code: nuanceCode,
		Incoming: []gen.Particle{
			{PID: pidNuEBar, Energy: eNu, Direction: r3.Vec{Z: 1}},
			{PID: pidProton, Energy: mP, Direction: r3.Vec{Z: 1}},
		},
		Outgoing: []gen.Particle{
			{PID: pidPositron, Energy: positronEnergy(eNu, dir.Z), Direction: dir},
		},
	}
}
