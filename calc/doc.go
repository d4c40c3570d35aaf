// Package calc provides the shared numeric helpers for the loadaudit calculators.
//
// # Reading Guide
//
// Start with these packages to understand the calculators:
//   - boxfill/: NEC 314.16 box fill allowances and standard box selection
//   - circuit/: circuit records, VA computation, panel schedule loading
//   - audit/: v2 and v3 load audits, NEC 517 N+1 redundancy
//   - manualj/: ACCA Manual J envelope and internal-gain loads
//
// # Architecture
//
// Every calculator is a pure function from a small input record to a result
// record. Results carry their own Print methods for the plain-text reports;
// report/ renders the heavier artifacts (PDF, XLSX, styled tables) on top of
// the audit results. Nothing in this tree keeps state between calls.
//
// Reported values are rounded with Round, which rounds half to even so that
// totals such as 171959.565 VA land on the same digit every time.
package calc
