package main

import (
	"errors"
	"net/http"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	grpclib "google.golang.org/grpc"

	"github.com/simaogato/assetly-backend/internal/logging"
)

func TestWaitForShutdown(t *testing.T) {
	tests := []struct {
		name     string
		signal   os.Signal
		serveErr error
		wantCode int
	}{
		{name: "Signal stops cleanly", signal: syscall.SIGTERM, wantCode: 0},
		{name: "Server failure stops with error code", serveErr: errors.New("HTTP server: address already in use"), wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sigChan := make(chan os.Signal, 1)
			serveErrs := make(chan error, 1)
			if tt.signal != nil {
				sigChan <- tt.signal
			}
			if tt.serveErr != nil {
				serveErrs <- tt.serveErr
			}

			code := waitForShutdown(logging.Discard(), sigChan, serveErrs, grpclib.NewServer(), &http.Server{})
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
