package storetests

import (
	"fmt"

	"github.com/chic-attire/storefront-contract-tests/framework"
)

// Stage names, as seen by the run/skip filters.
const (
	StageDataInit     = "data initialization"
	StageRegistration = "registration"
	StageLogin        = "login"
	StageProfile      = "profile"
	StageProducts     = "product listing"
	StageFiltering    = "product filtering"
	StageCart         = "cart operations"
	StageLogout       = "logout"
	StageUnauthAccess = "unauthenticated access"
)

// AllStages lists every stage in execution order.
var AllStages = []string{
	StageDataInit,
	StageRegistration,
	StageLogin,
	StageProfile,
	StageProducts,
	StageFiltering,
	StageCart,
	StageLogout,
	StageUnauthAccess,
}

const (
	skipReasonNoRegistration       = "registration did not succeed"
	skipReasonNoLogin              = "login did not succeed"
	skipReasonRegistrationFiltered = "registration stage was excluded by filter parameters"
	skipReasonLoginFiltered        = "login stage was excluded by filter parameters"
)

// RunTestSuite drives the whole fixed sequence against the configured
// deployment and returns the recorder with every result.
//
// Gating rules: a registration failure skips the entire authenticated path,
// not just the next stage; a login failure does the same from that point on.
// Profile and product checks do not gate each other. Cart checks run only
// when the product listing produced at least one product. The
// unauthenticated-access stage is independent and always runs. Gating keys
// off boolean stage outcomes only; transport, status and payload faults all
// fold into the same failure signal.
func RunTestSuite(config SuiteConfig) (*framework.Results, error) {
	c, err := newTestContext(config)
	if err != nil {
		return nil, fmt.Errorf("could not set up test run: %w", err)
	}

	c.runStage(StageDataInit, func() { doDataInitialization(c) })

	switch c.runStage(StageRegistration, func() { doRegistration(c) }) {
	case stagePassed:
		switch c.runStage(StageLogin, func() { doLogin(c) }) {
		case stagePassed:
			c.runStage(StageProfile, func() { doProfileCheck(c) })

			var products []Product
			c.runStage(StageProducts, func() { products = doProductListing(c) })
			c.runStage(StageFiltering, func() { doProductFiltering(c) })
			c.runStage(StageCart, func() { doCartOperations(c, products) })
			c.runStage(StageLogout, func() { doLogout(c) })
		case stageFailed:
			c.skipAuthenticatedPath(skipReasonNoLogin, StageProfile, StageProducts,
				StageFiltering, StageCart, StageLogout)
		case stageFilteredOut:
			c.skipAuthenticatedPath(skipReasonLoginFiltered, StageProfile, StageProducts,
				StageFiltering, StageCart, StageLogout)
		}
	case stageFailed:
		c.skipAuthenticatedPath(skipReasonNoRegistration, StageLogin, StageProfile,
			StageProducts, StageFiltering, StageCart, StageLogout)
	case stageFilteredOut:
		c.skipAuthenticatedPath(skipReasonRegistrationFiltered, StageLogin, StageProfile,
			StageProducts, StageFiltering, StageCart, StageLogout)
	}

	c.runStage(StageUnauthAccess, func() { doUnauthenticatedAccess(c) })

	return c.results, nil
}

func (c *TestContext) skipAuthenticatedPath(reason string, stages ...string) {
	for _, name := range stages {
		c.skipStage(name, reason)
	}
}
