package storetests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestUserGeneratesUniqueEmails(t *testing.T) {
	a := NewTestUser("Emma Johnson")
	b := NewTestUser("Emma Johnson")

	assert.NotEqual(t, a.Email, b.Email)
	assert.True(t, strings.HasPrefix(a.Email, "emma.johnson."))
	assert.True(t, strings.HasSuffix(a.Email, "@example.com"))
}

func TestNewTestUserDefaultsName(t *testing.T) {
	u := NewTestUser("")
	assert.Equal(t, defaultUserName, u.Name)
	assert.NotEmpty(t, u.Password)
}

func TestNewTestUserPasswordLength(t *testing.T) {
	u := NewTestUser("Emma Johnson")
	assert.GreaterOrEqual(t, len(u.Password), 14)
}
