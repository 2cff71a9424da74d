//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each expected header against the recorded
// response; an empty expected value asserts the header is unset.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()

	for name, value := range expected {
		assert.Equal(t, value, w.Header().Get(name), "header %s mismatch", name)
	}
}
