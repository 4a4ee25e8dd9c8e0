// Package network provides the shared HTTP client used for catalog requests.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/key"
)

// Client is the HTTP client shared across the application. Setup applies the configured timeout.
var Client = New(time.Minute)

// New returns a client with a pooled transport and the given overall request timeout.
// A zero timeout disables the client-level deadline.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// Setup applies network.timeout to Client.
func Setup() {
	Client.Timeout = time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
