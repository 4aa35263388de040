package gemini

import (
	"net/http"

	"github.com/phrazzld/slidegen/internal/generation"
)

// progressTransport reports generation.StageProcessing once response headers
// arrive. One instance serves a single call.
type progressTransport struct {
	base            http.RoundTripper
	onProgress      generation.ProgressFunc
	headersReceived bool
}

// RoundTrip implements http.RoundTripper.
func (t *progressTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err == nil {
		t.headersReceived = true
		t.onProgress.Report(generation.StageProcessing)
	}
	return resp, err
}
