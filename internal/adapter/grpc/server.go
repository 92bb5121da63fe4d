package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/dto"
	"github.com/simaogato/assetly-backend/internal/logging"
	"github.com/simaogato/assetly-backend/internal/usecase/asset"
	"github.com/simaogato/assetly-backend/internal/usecase/metrics"
	"github.com/simaogato/assetly-backend/internal/usecase/settings"
)

// Server implements the AssetService gRPC server
type Server struct {
	AssetService    *asset.AssetService
	SettingsService *settings.SettingsService
	Formatter       *metrics.Formatter
}

// NewServer creates a new gRPC server instance
func NewServer(
	assetService *asset.AssetService,
	settingsService *settings.SettingsService,
	formatter *metrics.Formatter,
) *Server {
	return &Server{
		AssetService:    assetService,
		SettingsService: settingsService,
		Formatter:       formatter,
	}
}

// Options configures NewGRPCServer
type Options struct {
	APIToken  string
	RateLimit float64
	RateBurst int
	Logger    *slog.Logger
}

// NewGRPCServer builds a grpc.Server with logging, rate limiting and auth
// interceptors, and registers srv together with the standard health and
// reflection services
func NewGRPCServer(srv AssetServiceServer, opts Options) *grpclib.Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			RateLimitInterceptor(rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)),
			AuthInterceptor(opts.APIToken),
		),
	)

	RegisterAssetServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	return grpcServer
}

// AddAsset handles the AddAsset RPC
func (s *Server) AddAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input dto.CreateAssetRequest
	if err := decodeStruct(req, &input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid asset payload: %v", err)
	}
	if err := input.Validate(); err != nil {
		return nil, mapError(err)
	}

	logger(ctx).Info("Received request to add asset", slog.String("name", input.Name))
	created, err := s.AssetService.AddAsset(ctx, input.ToInput())
	if err != nil {
		return nil, mapError(err)
	}

	return encodeStruct(dto.ToAssetResponse(*created, s.Formatter))
}

// UpdateAsset handles the UpdateAsset RPC
// The request carries "id" next to the fields to change; a null value clears a nullable field.
func (s *Server) UpdateAsset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input dto.UpdateAssetRequest
	if err := decodeStruct(req, &input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid asset payload: %v", err)
	}
	if err := input.Validate(); err != nil {
		return nil, mapError(err)
	}

	logger(ctx).Info("Received request to update asset", slog.String("asset_id", input.ID))
	updated, err := s.AssetService.UpdateAsset(ctx, input.ID, input.ToPatch())
	if err != nil {
		return nil, mapError(err)
	}

	return encodeStruct(dto.ToAssetResponse(*updated, s.Formatter))
}

// DeleteAsset handles the DeleteAsset RPC
func (s *Server) DeleteAsset(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "asset id is required")
	}

	logger(ctx).Info("Received request to delete asset", slog.String("asset_id", req.GetValue()))
	if err := s.AssetService.DeleteAsset(ctx, req.GetValue()); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// GetAsset handles the GetAsset RPC
func (s *Server) GetAsset(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "asset id is required")
	}

	found, err := s.AssetService.GetAssetByID(ctx, req.GetValue())
	if err != nil {
		return nil, mapError(err)
	}
	if found == nil {
		return nil, mapError(domain.AssetNotFound(req.GetValue()))
	}

	return encodeStruct(dto.ToAssetResponse(*found, s.Formatter))
}

// ListAssets handles the ListAssets RPC
// Optional request fields: status, search, sort.
func (s *Server) ListAssets(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input dto.ListAssetsRequest
	if err := decodeStruct(req, &input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid list request: %v", err)
	}
	opts, err := input.ToOptions()
	if err != nil {
		return nil, mapError(err)
	}

	assets, err := s.AssetService.ListAssets(ctx, opts)
	if err != nil {
		return nil, mapError(err)
	}

	return encodeStruct(dto.ListAssetsResponse{
		Assets: dto.ToListAssetResponse(assets, s.Formatter),
		Count:  len(assets),
	})
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	assets, err := s.AssetService.GetAssets(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return encodeStruct(dto.ToSummaryResponse(assets, s.SettingsService.Currency(), s.Formatter))
}

// GetSettings handles the GetSettings RPC
func (s *Server) GetSettings(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return encodeStruct(dto.ToSettingsResponse(s.SettingsService.Snapshot()))
}

// UpdateSettings handles the UpdateSettings RPC
func (s *Server) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input dto.UpdateSettingsRequest
	if err := decodeStruct(req, &input); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid settings payload: %v", err)
	}
	if err := input.Validate(); err != nil {
		return nil, mapError(err)
	}

	if input.Theme != nil {
		if err := s.SettingsService.SetTheme(ctx, domain.Theme(*input.Theme)); err != nil {
			return nil, mapError(err)
		}
	}
	if input.Currency != nil {
		if err := s.SettingsService.SetCurrency(ctx, domain.Currency(*input.Currency)); err != nil {
			return nil, mapError(err)
		}
	}

	return encodeStruct(dto.ToSettingsResponse(s.SettingsService.Snapshot()))
}

// decodeStruct converts a Struct payload into dst via its JSON form
func decodeStruct(in *structpb.Struct, dst interface{}) error {
	raw, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// encodeStruct converts v into a Struct via its JSON form
func encodeStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.As(err, &storageErr):
		return status.Error(codes.Internal, fmt.Sprintf("storage failure: %v", storageErr))
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ AssetServiceServer = (*Server)(nil)

// logger returns the request-scoped logger for ctx
func logger(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, nil)
}
