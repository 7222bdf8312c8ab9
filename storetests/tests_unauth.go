package storetests

import (
	"context"
	"fmt"

	"github.com/chic-attire/storefront-contract-tests/client"
)

// doUnauthenticatedAccess confirms that the protected endpoints reject a
// session that never authenticated. Rejection must manifest as both a 401
// and an explicit success=false payload; a correct status code with an
// ambiguous body is still a failure. These checks run on their own fresh
// session so the authenticated one is never polluted.
func doUnauthenticatedAccess(c *TestContext) {
	session, err := c.newUnauthenticatedSession()
	if err != nil {
		c.fail("Unauthenticated Profile Access", fmt.Sprintf("Could not create session: %s", err))
		c.fail("Unauthenticated Cart Access", fmt.Sprintf("Could not create session: %s", err))
		return
	}

	checkRejection(c, session, "Unauthenticated Profile Access", "/auth/me",
		"Correctly rejected unauthenticated request")
	checkRejection(c, session, "Unauthenticated Cart Access", "/cart",
		"Correctly rejected unauthenticated cart access")
}

func checkRejection(c *TestContext, session *client.Session, checkName, path, passMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.RequestTimeout)
	defer cancel()

	resp, err := session.Get(ctx, path)
	if err != nil {
		c.fail(checkName, fmt.Sprintf("Request failed: %s", err))
		return
	}
	if resp.StatusCode != 401 {
		c.fail(checkName, fmt.Sprintf("Expected 401, got %d", resp.StatusCode))
		return
	}

	// The success indicator must be explicitly false; a 401 with an
	// ambiguous payload is not a clean rejection.
	var decoded struct {
		Success *bool `json:"success"`
	}
	if err := resp.DecodeJSON(&decoded); err != nil {
		c.fail(checkName, "Rejection payload is not valid JSON", resp.TruncatedBody(200))
		return
	}
	if decoded.Success == nil {
		c.fail(checkName, "Rejection payload has no success indicator", resp.TruncatedBody(200))
		return
	}
	if *decoded.Success {
		c.fail(checkName, "Should have rejected unauthenticated request",
			"Payload reported success=true alongside a 401 status")
		return
	}

	c.pass(checkName, passMessage)
}
