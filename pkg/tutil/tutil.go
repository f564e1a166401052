// Package tutil holds helpers shared by tests.
package tutil

import (
	"os"
	"strings"
	"testing"
)

const testModeEnv = "TOOLREC_TEST"

// IsIntegrationTest is true when TOOLREC_TEST=integration.
func IsIntegrationTest() bool {
	return strings.EqualFold(os.Getenv(testModeEnv), "integration")
}

// RequireIntegration skips t unless integration tests were asked for. needs names the
// outside service the test talks to.
func RequireIntegration(t testing.TB, needs string) {
	t.Helper()
	if !IsIntegrationTest() {
		t.Skipf("Skipping test that needs %s, set %s=integration to run", needs, testModeEnv)
	}
}
