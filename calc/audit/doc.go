// Package audit computes electrical demand for a list of branch circuits.
//
// Two auditors share the per-circuit VA rule from package circuit:
//   - AuditV2: A/B/C bus loading with three-phase loads spread evenly,
//     imbalance percentage and a balanced flag (< 10%).
//   - AuditV3: hospital node audit with N+1 capacity options, per-label
//     phase grouping, critical-circuit listing and an optional HVAC estimate.
//
// CheckNPlusOne applies the NEC 517 critical-circuit rule to either input.
package audit
