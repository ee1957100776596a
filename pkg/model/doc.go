// Package model defines the narrow contract between the optimization
// core and an external RICE+AIR implementation (a regional climate-economy
// model coupled to an aerosol/health module). The core never computes
// climate or economic dynamics itself; it configures inputs, triggers
// runs, and reads outputs through this contract.
//
// Overview
//
//   - Model interface:
//     Configure(component, field string, value *mat.Dense) error
//     Run() error
//     ReadScalar(component, field string) (float64, error)
//     ReadMatrix(component, field string) (*mat.Dense, error)
//     Snapshot() Model
//
//     Configure stores a copy of the [period, region] table under the
//     named component field. Run recomputes every output from the current
//     inputs; a typical optimization performs thousands of Configure/Run
//     round trips on one instance. Reads address outputs only and fail
//     with ErrNotRun before the first Run.
//
//   - Component/field vocabulary (the model's own variable names):
//     emissions/MIU        : industrial CO2 abatement fraction input
//     air/MIU_AIR          : aerosol co-reduction control input
//     air/LYG              : life-years gained valuation input
//     air/AVOIDED_DEATHS   : avoided premature deaths valuation input
//     welfare/UTILITY      : discounted global welfare output (scalar)
//     emissions/EIND       : industrial CO2 emissions output, GtC/period
//
//   - Config carries the per-run parameters (run length, discounting,
//     damage shape, air scenario, health valuation). NewConfig merges a
//     partial Config over DefaultConfig; Validate rejects unusable
//     parameter sets before any instance is built.
//
// # Snapshot semantics
//
// Snapshot returns a deep copy: separate input tables, separate outputs,
// separate run state. The copy is how baseline accounting duplicates an
// optimized run without perturbing it; there is no shared-state reset
// anywhere in the contract. Implementations that alias internal tables
// between a snapshot and its origin are broken, and the modeltest double
// has regression coverage for exactly that.
//
// # Concurrency
//
// One instance is single-goroutine: Configure/Run/Read form a sequential
// conversation. Parallel experiments must build one instance each;
// nothing in this package synchronizes access.
//
// Testing guidance
//
//   - modeltest.Model is an in-memory double with a concave welfare
//     response, linear emissions scaling, and deep-copy snapshots. It is
//     deliberately not a climate model; use it to exercise the
//     optimization pipeline, not to produce science.
//   - Error paths (unknown fields, nil tables, shape mismatches, reads
//     before Run) are part of the contract and worth asserting against
//     any new implementation.
//
// Package import path: github.com/policymodel/riceair/pkg/model
package model
