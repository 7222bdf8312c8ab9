package storetests

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/chic-attire/storefront-contract-tests/client"
	"github.com/chic-attire/storefront-contract-tests/framework"
)

const defaultRequestTimeout = time.Second * 30

// SuiteConfig is everything a run needs. Only BaseURL is required.
type SuiteConfig struct {
	// BaseURL is the root of the target deployment, without the /api suffix.
	BaseURL string

	// User is the synthetic identity to register and log in as. If zero, a
	// unique identity is generated.
	User TestUser

	// RequestTimeout bounds each individual HTTP call.
	RequestTimeout time.Duration

	// Filter selects which stages run. Nil runs everything.
	Filter framework.Filter

	// CheckLogger receives progress events. Nil discards them.
	CheckLogger framework.CheckLogger
}

// TestContext carries the shared per-run state through the stage functions:
// the authenticated session, the test identity, and the result recorder.
// Stage functions never propagate faults; every failure mode becomes a
// recorded failing result.
type TestContext struct {
	config      SuiteConfig
	session     *client.Session
	results     *framework.Results
	checkLogger framework.CheckLogger
	stageLogger *switchableLogger
}

// switchableLogger forwards to the current stage's capturing logger, so one
// long-lived Session can emit its debug trace into per-stage buckets.
type switchableLogger struct {
	target framework.Logger
}

func (s *switchableLogger) Printf(message string, args ...interface{}) {
	if s.target != nil {
		s.target.Printf(message, args...)
	}
}

func newTestContext(config SuiteConfig) (*TestContext, error) {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = defaultRequestTimeout
	}
	if config.CheckLogger == nil {
		config.CheckLogger = framework.NullCheckLogger()
	}
	if config.User == (TestUser{}) {
		config.User = NewTestUser("")
	}

	stageLogger := &switchableLogger{}
	session, err := client.NewSession(config.BaseURL, config.RequestTimeout, stageLogger)
	if err != nil {
		return nil, err
	}

	return &TestContext{
		config:      config,
		session:     session,
		results:     framework.NewResults(config.CheckLogger),
		checkLogger: config.CheckLogger,
		stageLogger: stageLogger,
	}, nil
}

// User returns the identity this run registered with.
func (c *TestContext) User() TestUser {
	return c.config.User
}

func (c *TestContext) pass(name, message string, details ...string) {
	c.results.Record(name, true, message, details...)
}

func (c *TestContext) fail(name, message string, details ...string) {
	c.results.Record(name, false, message, details...)
}

// stageOutcome distinguishes a stage that ran and failed from one that was
// excluded by the run/skip filters, so dependent-stage skip messages do not
// misreport a filter exclusion as a failure. Gating itself only ever asks
// "did the stage pass"; both other outcomes close the gate.
type stageOutcome int

const (
	stagePassed stageOutcome = iota
	stageFailed
	stageFilteredOut
)

// runStage executes one stage under the run/skip filter with a panic guard
// and per-stage debug capture. The outcome is stagePassed only when every
// check the stage recorded succeeded.
func (c *TestContext) runStage(name string, action func()) stageOutcome {
	if c.config.Filter != nil && !c.config.Filter(name) {
		c.checkLogger.StageSkipped(name, "excluded by filter parameters")
		return stageFilteredOut
	}
	c.checkLogger.StageStarted(name)

	capture := &framework.CapturingLogger{}
	c.stageLogger.target = capture
	defer func() { c.stageLogger.target = nil }()

	before := c.results.Len()
	func() {
		defer func() {
			if r := recover(); r != nil {
				c.fail(name, fmt.Sprintf("unexpected panic in stage: %+v", r), string(debug.Stack()))
			}
		}()
		action()
	}()

	failed := false
	for _, result := range c.results.All()[before:] {
		if !result.Success {
			failed = true
			break
		}
	}
	c.checkLogger.StageFinished(name, failed, capture.Output())
	if failed {
		return stageFailed
	}
	return stagePassed
}

func (c *TestContext) skipStage(name, reason string) {
	c.checkLogger.StageSkipped(name, reason)
}

// getJSON issues a GET and records a transport fault against checkName if no
// response was obtained at all.
func (c *TestContext) getJSON(checkName, path string) (*client.Response, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.RequestTimeout)
	defer cancel()
	resp, err := c.session.Get(ctx, path)
	if err != nil {
		c.fail(checkName, fmt.Sprintf("Request failed: %s", err))
		return nil, false
	}
	return resp, true
}

func (c *TestContext) postJSON(checkName, path string, body interface{}) (*client.Response, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.RequestTimeout)
	defer cancel()
	resp, err := c.session.PostJSON(ctx, path, body)
	if err != nil {
		c.fail(checkName, fmt.Sprintf("Request failed: %s", err))
		return nil, false
	}
	return resp, true
}

// decode records a shape fault against checkName if the body is not valid
// JSON for the target type.
func (c *TestContext) decode(checkName string, resp *client.Response, target interface{}) bool {
	if err := resp.DecodeJSON(target); err != nil {
		c.fail(checkName, "Invalid response format", resp.TruncatedBody(200))
		return false
	}
	return true
}

// failStatus records a status-code fault with the raw body as diagnostics.
func (c *TestContext) failStatus(checkName string, resp *client.Response) {
	c.fail(checkName, fmt.Sprintf("HTTP %d", resp.StatusCode), "Response: "+resp.TruncatedBody(200))
}

// newUnauthenticatedSession opens a second transport session with an empty
// cookie jar, sharing the per-stage debug capture but nothing else.
func (c *TestContext) newUnauthenticatedSession() (*client.Session, error) {
	return client.NewSession(c.config.BaseURL, c.config.RequestTimeout, c.stageLogger)
}
