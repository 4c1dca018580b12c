// Package physics provides point particles and the N-body system that
// drives them.
//
// A [Particle] carries position, velocity, mass and charge plus the DV
// accumulator. The force methods write only into the other particle's DV:
//
//	sun.GravitationalForce(earth, dt) // earth.DV += dt·G·m_sun·r/|r|³
//	earth.UpdatePosition(dt)          // velocity ⊕ DV, then move, then clear DV
//
// Velocities compose with the relativistic rule from package relativity.
//
// [System] runs the accumulate and update phases for a whole set of
// particles and can spread accumulation over several goroutines, one range
// of target particles per worker.
//
// Nothing here guards against coincident particles or charged massless
// particles; the resulting Inf and NaN values flow through unchanged.
package physics
