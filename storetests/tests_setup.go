package storetests

import "fmt"

// doDataInitialization seeds the sample catalog through the init-data
// endpoint. The endpoint is idempotent: it reports success whether it just
// inserted the samples or found them already present.
func doDataInitialization(c *TestContext) bool {
	const checkName = "Data Initialization"

	resp, ok := c.postJSON(checkName, "/init-data", nil)
	if !ok {
		return false
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return false
	}

	var decoded statusResponse
	if !c.decode(checkName, resp, &decoded) {
		return false
	}
	if !decoded.Success {
		c.fail(checkName, "API returned success=false", "Response: "+resp.TruncatedBody(200))
		return false
	}

	c.pass(checkName, "Sample data initialized successfully", fmt.Sprintf("Response: %s", decoded.Message))
	return true
}
