//go:build integration
// +build integration

package routes

import (
	"os"
	"testing"

	"org-demo-backend/internal/testutils"
)

// TestMain purges the shared Postgres container once the package is done
func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithCleanup(m))
}
