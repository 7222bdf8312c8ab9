// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the storefront API domain.
//
// The general model is:
//
// 1. Each logical assertion the harness performs produces exactly one CheckResult,
// appended to an ordered Results recorder. Results are immutable once recorded; a
// follow-up verification is a new record, never a revision of an earlier one.
//
// 2. A CheckLogger receives progress notifications as checks run, so a command-line
// front end can echo them as they happen.
//
// 3. When a run is complete, the full ordered result sequence is summarized once:
// totals, pass rate, keyword-matched categories with health verdicts, and the list
// of failures in recorded order.
//
// The domain-specific code that knows what is being tested lives in the storetests
// package, on top of this one.
package framework
