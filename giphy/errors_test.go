package giphy

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "validation error",
			err:  newValidationError("query parameter is required"),
			want: KindValidation,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: KindTimeout,
		},
		{
			name: "wrapped deadline exceeded",
			err:  &url.Error{Op: "Get", URL: "http://example.com", Err: context.DeadlineExceeded},
			want: KindTimeout,
		},
		{
			name: "net timeout",
			err:  &url.Error{Op: "Get", URL: "http://example.com", Err: fakeTimeoutError{}},
			want: KindTimeout,
		},
		{
			name: "4xx status",
			err:  &APIError{StatusCode: 404, Message: "Not Found"},
			want: KindClientError,
		},
		{
			name: "5xx status",
			err:  &APIError{StatusCode: 503, Message: "Service Unavailable"},
			want: KindServerError,
		},
		{
			name: "status outside error ranges",
			err:  &APIError{StatusCode: 301, Message: "Moved Permanently"},
			want: KindUnknown,
		},
		{
			name: "connection refused",
			err:  &url.Error{Op: "Get", URL: "http://example.com", Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}},
			want: KindNetworkError,
		},
		{
			name: "unclassified error",
			err:  errors.New("something odd happened"),
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			failure := Classify(tt.err, "search")

			assert.Equal(t, tt.want, failure.Kind)
			assert.Equal(t, tt.err.Error(), failure.Message)
			assert.Equal(t, "search", failure.Operation)
			assert.False(t, failure.OccurredAt.Before(before))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found"}
	assert.Equal(t, "giphy API error: status 404: Not Found", err.Error())

	assert.True(t, (&APIError{StatusCode: 400}).IsClientError())
	assert.True(t, (&APIError{StatusCode: 499}).IsClientError())
	assert.False(t, (&APIError{StatusCode: 500}).IsClientError())

	assert.True(t, (&APIError{StatusCode: 500}).IsServerError())
	assert.True(t, (&APIError{StatusCode: 599}).IsServerError())
	assert.False(t, (&APIError{StatusCode: 600}).IsServerError())
}

func TestValidationError(t *testing.T) {
	err := newValidationError("limit must be an integer between 1 and %d", 50)
	assert.Equal(t, "limit must be an integer between 1 and 50", err.Error())

	var validationErr *ValidationError
	assert.True(t, errors.As(error(err), &validationErr))
}
