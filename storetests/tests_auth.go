package storetests

import "fmt"

// tokenCookieName is the session cookie the API sets on register and login.
const tokenCookieName = "token"

// doRegistration creates the run's synthetic user. Its outcome gates the
// whole authenticated path.
func doRegistration(c *TestContext) bool {
	const checkName = "User Registration"

	user := c.User()
	resp, ok := c.postJSON(checkName, "/auth/register", registerRequest{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	})
	if !ok {
		return false
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return false
	}

	var decoded userResponse
	if !c.decode(checkName, resp, &decoded) {
		return false
	}
	if !decoded.Success || decoded.User == nil {
		c.fail(checkName, "Registration failed - no user data", "Response: "+resp.TruncatedBody(200))
		return false
	}

	c.pass(checkName, "User registered successfully",
		fmt.Sprintf("User ID: %s, Name: %s", decoded.User.ID, decoded.User.Name))
	return true
}

// doLogin authenticates with the credentials used at registration and
// verifies the token cookie landed in the session's jar.
func doLogin(c *TestContext) bool {
	const checkName = "User Login"

	user := c.User()
	resp, ok := c.postJSON(checkName, "/auth/login", loginRequest{
		Email:    user.Email,
		Password: user.Password,
	})
	if !ok {
		return false
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return false
	}

	var decoded userResponse
	if !c.decode(checkName, resp, &decoded) {
		return false
	}
	if !decoded.Success || decoded.User == nil {
		c.fail(checkName, "Login failed - invalid response", "Response: "+resp.TruncatedBody(200))
		return false
	}

	hasToken := c.session.HasCookie(tokenCookieName)
	if !hasToken {
		c.fail(checkName, "Login succeeded but no token cookie was set")
		return false
	}

	c.pass(checkName, "User logged in successfully",
		fmt.Sprintf("User: %s, Token Cookie: %t", decoded.User.Name, hasToken))
	return true
}

// doProfileCheck fetches the current profile and requires an exact email
// match with the registered identity.
func doProfileCheck(c *TestContext) bool {
	const checkName = "Get User Profile"

	resp, ok := c.getJSON(checkName, "/auth/me")
	if !ok {
		return false
	}
	switch {
	case resp.StatusCode == 401:
		c.fail(checkName, "Authentication required", "User not authenticated")
		return false
	case resp.StatusCode != 200:
		c.failStatus(checkName, resp)
		return false
	}

	var decoded userResponse
	if !c.decode(checkName, resp, &decoded) {
		return false
	}
	if !decoded.Success || decoded.User == nil {
		c.fail(checkName, "Profile retrieval failed", "Response: "+resp.TruncatedBody(200))
		return false
	}
	if decoded.User.Email != c.User().Email {
		c.fail(checkName, "Profile mismatch",
			fmt.Sprintf("Expected: %s, Got: %s", c.User().Email, decoded.User.Email))
		return false
	}

	c.pass(checkName, "Profile retrieved successfully",
		fmt.Sprintf("User: %s (%s)", decoded.User.Name, decoded.User.Email))
	return true
}

// doLogout ends the session and then re-fetches the profile on the same
// session to confirm it was actually invalidated. The verification is a
// separate record from the logout itself.
func doLogout(c *TestContext) {
	const checkName = "User Logout"
	const verifyName = "Logout Verification"

	resp, ok := c.postJSON(checkName, "/auth/logout", nil)
	if !ok {
		return
	}
	if resp.StatusCode != 200 {
		c.failStatus(checkName, resp)
		return
	}

	var decoded statusResponse
	if !c.decode(checkName, resp, &decoded) {
		return
	}
	if !decoded.Success {
		c.fail(checkName, "Logout failed - API returned success=false")
		return
	}
	c.pass(checkName, "User logged out successfully")

	verify, ok := c.getJSON(verifyName, "/auth/me")
	if !ok {
		return
	}
	if verify.StatusCode == 401 {
		c.pass(verifyName, "Session properly cleared after logout")
	} else {
		c.fail(verifyName, "Session not properly cleared after logout",
			fmt.Sprintf("Expected 401, got %d", verify.StatusCode))
	}
}
