//go:build !integration

package repository

import "testing"

func startPostgres(t *testing.T) string {
	t.Helper()
	t.Skip("TEST_DATABASE_URL is not set; run with -tags integration to use a container")
	return ""
}
