// Package storetests contains the storefront API contract checks themselves and
// their supporting types.
//
// Harness infrastructure that is not specific to the storefront domain, such as
// result recording and summary reporting, is in the lower-level framework
// package; the session-scoped HTTP client is in the client package.
//
// The suite is strictly sequential. One authenticated Session is shared by all
// stages on the main path; the unauthenticated-access stage opens a second,
// independent Session so it cannot pollute the first.
package storetests
