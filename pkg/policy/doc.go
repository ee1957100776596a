// Package policy converts global carbon-tax trajectories into the
// regional abatement inputs a RICE+AIR run consumes. It is the pure
// computational layer of the optimization core: no model access, no
// logging, no state.
//
// Overview
//
//   - Ceiling(backstop) returns the per-period maximum backstop price
//     across regions, scaled from table units (thousands of dollars per
//     tonne) to dollars per tonne. This series doubles as the
//     full-decarbonization tax trajectory and as the optimizer's upper
//     bound.
//
//   - Mitigation(tax, backstop, theta2) expands a decision window into a
//     full-horizon trajectory (period 1 fixed at zero, the window filling
//     periods 2..len(tax)+1, the remainder riding the ceiling) and maps
//     it cell-wise onto abatement fractions:
//
//     miu[t,r] = clamp01((traj[t] / price[t,r])^(1/(theta2-1)))
//
//     theta2 is the abatement cost exponent, 2.8 in the published
//     parameterization (DefaultTheta2). Fractions land in [0,1] by
//     construction: a zero tax buys nothing, a tax at or past the
//     regional backstop buys everything.
//
//   - Normalize(traj, backstop) canonicalizes a candidate against the
//     ceiling: both sides rounded to cents, first agreeing period wins,
//     and from that period on the candidate is snapped to the exact
//     ceiling. Optimizers drift by fractions of a cent around the
//     ceiling; snapping keeps "full decarbonization from period k"
//     a single point in the search space instead of a noise cloud.
//
// Errors
//
//   - ErrNoBackstop     : nil or empty price table
//   - ErrBackstopDomain : a price at or below zero, or NaN (abatement is
//     undefined there; rejected up front rather than surfaced as NaN)
//   - ErrTaxLength      : window or trajectory longer than the horizon
//   - ErrBadExponent    : theta2 at or below 1
//
// Testing guidance
//
//   - Properties worth keeping pinned: fraction containment in [0,1],
//     zero-tax/zero-abatement, ceiling saturation, first-match
//     determinism of Normalize, and its idempotence.
//   - All functions are deterministic; byte-identical inputs must give
//     byte-identical outputs.
//
// Package import path: github.com/policymodel/riceair/pkg/policy
package policy
