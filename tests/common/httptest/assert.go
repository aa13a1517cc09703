//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	// handlers respond with either a flat error string or a message object
	var errorResponse struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	var message string
	if err := json.Unmarshal(errorResponse.Error, &message); err != nil {
		var nested struct {
			Message string `json:"message"`
		}
		err = json.Unmarshal(errorResponse.Error, &nested)
		assert.NoError(t, err, fmt.Sprintf("Unrecognized error body shape: %s", w.Body.String()))
		message = nested.Message
	}

	if expectedErrorMsg != "" {
		assert.Contains(t, message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
