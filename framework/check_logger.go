package framework

// CheckLogger receives progress notifications as the harness runs, so a
// front end can echo checks and stage transitions as they happen. The
// summary report is produced separately from the full Results sequence.
//
// Debug output is captured per stage rather than per check: one stage may
// make several HTTP calls whose traces are only interesting together.
type CheckLogger interface {
	StageStarted(name string)
	StageSkipped(name string, reason string)
	CheckFinished(result CheckResult)
	StageFinished(name string, failed bool, debugOutput CapturedOutput)
}

type nullCheckLogger struct{}

func (n nullCheckLogger) StageStarted(string)                        {}
func (n nullCheckLogger) StageSkipped(string, string)                {}
func (n nullCheckLogger) CheckFinished(CheckResult)                  {}
func (n nullCheckLogger) StageFinished(string, bool, CapturedOutput) {}

func NullCheckLogger() CheckLogger { return nullCheckLogger{} }
