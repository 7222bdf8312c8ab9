package framework

import (
	"fmt"
	"time"
)

// CheckResult is the outcome of a single logical assertion against the API.
// It is immutable once recorded.
type CheckResult struct {
	Name    string
	Success bool
	Message string
	Details string
	Time    time.Time
}

func (r CheckResult) String() string {
	status := "FAIL"
	if r.Success {
		status = "PASS"
	}
	return fmt.Sprintf("%s: %s - %s", status, r.Name, r.Message)
}

// Results is an append-only recorder of CheckResults. Insertion order is
// execution order and is preserved for reporting. It is not safe for
// concurrent use; the harness is strictly sequential.
type Results struct {
	all    []CheckResult
	logger CheckLogger
	clock  func() time.Time
}

// NewResults creates an empty recorder. The logger may be nil, in which case
// recorded checks are not echoed anywhere.
func NewResults(logger CheckLogger) *Results {
	if logger == nil {
		logger = nullCheckLogger{}
	}
	return &Results{logger: logger, clock: time.Now}
}

// Record appends one result. The optional details argument carries extra
// diagnostic text beyond the one-line message; at most one is used.
func (r *Results) Record(name string, success bool, message string, details ...string) {
	result := CheckResult{
		Name:    name,
		Success: success,
		Message: message,
		Time:    r.clock(),
	}
	if len(details) > 0 {
		result.Details = details[0]
	}
	r.all = append(r.all, result)
	r.logger.CheckFinished(result)
}

// All returns the recorded results in insertion order. The returned slice is
// a copy; mutating it does not affect the recorder.
func (r *Results) All() []CheckResult {
	return append([]CheckResult(nil), r.all...)
}

// OK reports whether every recorded result succeeded. An empty recorder is OK.
func (r *Results) OK() bool {
	for _, result := range r.all {
		if !result.Success {
			return false
		}
	}
	return true
}

func (r *Results) Len() int {
	return len(r.all)
}
