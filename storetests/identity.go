package storetests

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sethvargo/go-password/password"
)

// TestUser is the synthetic identity a run registers and authenticates as.
// It is generated once at harness start and injected into the suite, so a
// test of the suite itself can supply a fixed identity instead.
type TestUser struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

const defaultUserName = "Emma Johnson"

// fallbackPassword is used if the generator errors out; the API only
// requires the same password at login that was sent at registration.
const fallbackPassword = "SecurePass123!"

// NewTestUser builds an identity with a unique email address so repeated
// runs against the same server never collide on the registration check.
func NewTestUser(name string) TestUser {
	if name == "" {
		name = defaultUserName
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	localPart := strings.ReplaceAll(strings.ToLower(name), " ", ".")

	pw, err := password.Generate(16, 4, 2, false, false)
	if err != nil {
		pw = fallbackPassword
	}

	return TestUser{
		Name:     name,
		Email:    fmt.Sprintf("%s.%s@example.com", localPart, suffix),
		Password: pw,
	}
}
