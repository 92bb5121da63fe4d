package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
)

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	interceptor := AuthInterceptor(validToken)

	tests := []struct {
		name           string
		ctx            context.Context
		handlerCalled  bool
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name: "Valid Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "+validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: FullMethod("ListAssets"),
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

func TestAuthInterceptor_SkipsHealthChecks(t *testing.T) {
	interceptor := AuthInterceptor("secret")
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := RateLimitInterceptor(rate.NewLimiter(rate.Limit(0.001), 2))
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod("GetSummary")}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	for i := 0; i < 2; i++ {
		_, err := interceptor(context.Background(), nil, info, handler)
		require.NoError(t, err)
	}

	_, err := interceptor(context.Background(), nil, info, handler)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(&buf, "info", "json")
	interceptor := LoggingInterceptor(base)
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod("GetAsset")}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "req-42"))

	var scoped *slog.Logger
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		scoped = logging.FromContext(ctx, nil)
		return nil, status.Error(codes.NotFound, "missing")
	})

	assert.Equal(t, codes.NotFound, status.Code(err))
	require.NotNil(t, scoped)
	assert.NotSame(t, base, scoped)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"code":"NotFound"`)
	assert.Contains(t, buf.String(), FullMethod("GetAsset"))
}

func TestLoggingInterceptor_ReportsHeaderFailure(t *testing.T) {
	var buf bytes.Buffer
	interceptor := LoggingInterceptor(logging.New(&buf, "debug", "json"))
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod("GetSummary")}

	// A context without a server stream cannot carry response headers
	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), "Failed to set request id header")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "Unknown error", err: errors.New("boom"), want: codes.Internal},
		{name: "Validation", err: fmt.Errorf("bad theme: %w", domain.ErrValidation), want: codes.InvalidArgument},
		{name: "Missing asset", err: domain.AssetNotFound("abc"), want: codes.NotFound},
		{name: "Deadline", err: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{name: "Storage", err: &domain.StorageError{Op: "write", Key: "k", Err: errors.New("disk full")}, want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}
