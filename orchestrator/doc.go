// Package orchestrator ties routing, specialist invocation and synthesis
// into a single sequential control loop. One request is one synchronous
// pipeline over the phases ROUTING, SPECIALIST_RUN, SYNTHESIS_CHECK,
// SYNTHESIZE and DONE; no step begins before the previous one's state
// mutation is visible.
//
// Fan-out policy: routing is consulted repeatedly. After each specialist
// answers, the remaining specialists are re-scored against the query; the
// loop stops routing once no remaining specialist matches or the configured
// cap is reached. When two or more specialists have answered, the synthesis
// gate triggers exactly one synthesizer run as the terminal step. Setting
// MaxSpecialists to 1 reproduces the minimal single-specialist policy.
package orchestrator
