package adapter

import (
	"strings"

	"github.com/go-resty/resty/v2"
)

// expectStatus turns every status other than want into an
// [UnexpectedStatusError], regardless of what the body says.
func expectStatus(op string, resp *resty.Response, want int) error {
	if resp.StatusCode() == want {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	return &UnexpectedStatusError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Want:       want,
		Body:       body,
	}
}
