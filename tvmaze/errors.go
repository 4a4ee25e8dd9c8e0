package tvmaze

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxMessageBytes bounds how much of an error body ends up in a RemoteFetchError.
const maxMessageBytes = 512

// RemoteFetchError reports a non-success HTTP response from the catalog.
type RemoteFetchError struct {
	URL     string
	Status  int
	Message string
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("remote fetch %s: %d %s", e.URL, e.Status, e.Message)
}

// NotFound reports whether the catalog answered 404.
func (e *RemoteFetchError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func newRemoteFetchError(u string, resp *http.Response) *RemoteFetchError {
	message := http.StatusText(resp.StatusCode)

	// TVMaze error bodies look like {"name":"Not Found","message":"","code":0,"status":404}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxMessageBytes))
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "<") {
		message = message + ": " + text
	}

	return &RemoteFetchError{
		URL:     u,
		Status:  resp.StatusCode,
		Message: message,
	}
}

// AsRemoteFetchError unwraps err into a *RemoteFetchError when it carries one.
func AsRemoteFetchError(err error) (*RemoteFetchError, bool) {
	var fetchErr *RemoteFetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
