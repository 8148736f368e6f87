// Package grpc serves the links service over gRPC.
package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/atinyakov/useful-links/internal/app/service"
	"github.com/atinyakov/useful-links/internal/intercepters"
	"github.com/atinyakov/useful-links/internal/loading"
	"github.com/atinyakov/useful-links/internal/middleware"
	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	port       int
	logger     *zap.Logger
}

// New creates a gRPC server exposing svc as links.LinkService.
func New(logger *zap.Logger, svc service.LinkServiceIface, auth service.AuthIface, trustedSubnet string, port int) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger), logging.WithLogOnEvents(logging.FinishCall)),
			intercepters.WithRealIP,
			intercepters.WithJWT(auth),
		),
	)

	s.RegisterService(&ServiceDesc, &LinkServer{
		Service:       svc,
		TrustedSubnet: trustedSubnet,
		Logger:        logger,
	})

	return &Server{
		grpcServer: s,
		port:       port,
		logger:     logger,
	}
}

// Start listens on the configured port and serves until GracefulStop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.Error(err))
		return err
	}

	return s.Serve(lis)
}

// Serve accepts connections on lis.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// LinkServer implements LinkServiceServer on top of the link service.
type LinkServer struct {
	Service       service.LinkServiceIface
	TrustedSubnet string
	Logger        *zap.Logger
}

func (s *LinkServer) GetLink(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	l, err := s.Service.GetLink(ctx, req.GetValue())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "link not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return linkStruct(*l)
}

// ListLinks lists the links of the requested category, or every link when
// the category is empty.
func (s *LinkServer) ListLinks(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	links, err := s.Service.ListLinks(ctx, req.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return linkList(links)
}

func (s *LinkServer) GetLoading(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	flag, err := s.Service.Loading().Lookup(req.GetValue())
	if errors.Is(err, loading.ErrUnknownDomain) {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return wrapperspb.Bool(flag.Get()), nil
}

// SetLoading expects a struct with a string "domain" and a bool "loading".
func (s *LinkServer) SetLoading(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	domain := req.GetFields()["domain"].GetStringValue()

	v, ok := req.GetFields()["loading"].GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "loading must be a bool")
	}

	flag, err := s.Service.Loading().Lookup(domain)
	if errors.Is(err, loading.ErrUnknownDomain) {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	flag.Set(v.BoolValue)
	s.Logger.Info("loading flag set", zap.String("domain", domain), zap.Bool("loading", v.BoolValue))

	return &emptypb.Empty{}, nil
}

// GetStats is only served to callers whose x-real-ip is inside the trusted
// subnet.
func (s *LinkServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if !middleware.TrustedIP(s.TrustedSubnet, intercepters.RealIP(ctx)) {
		return nil, status.Error(codes.PermissionDenied, "untrusted caller")
	}

	stats, err := s.Service.GetStats(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out, err := structpb.NewStruct(map[string]any{
		"links":   stats.Links,
		"authors": stats.Authors,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// CreateLink stores one link authored by the calling user. The request
// struct has the fields of a create request: id (optional), title, url,
// description and category.
func (s *LinkServer) CreateLink(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	var lr models.LinkRequest
	if err := decodeStruct(req, &lr); err != nil {
		return nil, err
	}

	l, err := s.Service.CreateLink(ctx, lr, userID)
	if err != nil {
		return nil, createError(l, err)
	}

	return linkStruct(*l)
}

// CreateLinks stores every link of the list or none of them.
func (s *LinkServer) CreateLinks(ctx context.Context, req *structpb.ListValue) (*structpb.ListValue, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	reqs := make([]models.LinkRequest, 0, len(req.GetValues()))
	for _, v := range req.GetValues() {
		item := v.GetStructValue()
		if item == nil {
			return nil, status.Error(codes.InvalidArgument, "every item must be a struct")
		}

		var lr models.LinkRequest
		if err := decodeStruct(item, &lr); err != nil {
			return nil, err
		}
		reqs = append(reqs, lr)
	}

	links, err := s.Service.CreateLinks(ctx, reqs, userID)
	if err != nil {
		return nil, createError(nil, err)
	}

	return linkList(links)
}

// GetUserLinks lists the links created by the calling user.
func (s *LinkServer) GetUserLinks(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	links, err := s.Service.GetLinksByAuthor(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return linkList(links)
}

// DeleteLinks takes a list of link ids and deletes the ones owned by the
// calling user in the background.
func (s *LinkServer) DeleteLinks(ctx context.Context, req *structpb.ListValue) (*emptypb.Empty, error) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "user ID missing in context")
	}

	ids := make([]string, 0, len(req.GetValues()))
	for _, v := range req.GetValues() {
		id, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "ids must be strings")
		}
		ids = append(ids, id.StringValue)
	}

	go s.Service.DeleteLinks(context.WithoutCancel(ctx), ids, userID)

	return &emptypb.Empty{}, nil
}

// decodeStruct maps a struct onto dst through its JSON form, rejecting
// unknown fields the same way the HTTP handlers do.
func decodeStruct(in *structpb.Struct, dst any) error {
	raw, err := protojson.Marshal(in)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid link: %v", err)
	}
	return nil
}

func createError(existing *models.UsefulLink, err error) error {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.Is(err, storage.ErrConflict):
		if existing != nil {
			return status.Errorf(codes.AlreadyExists, "link conflicts with %s", existing.ID)
		}
		return status.Error(codes.AlreadyExists, "link conflict")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func linkStruct(l models.UsefulLink) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(linkFields(l))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func linkList(links []models.UsefulLink) (*structpb.ListValue, error) {
	items := make([]any, 0, len(links))
	for _, l := range links {
		items = append(items, linkFields(l))
	}

	out, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func linkFields(l models.UsefulLink) map[string]any {
	var description any
	if l.Description != nil {
		description = *l.Description
	}

	return map[string]any{
		"id":          l.ID,
		"title":       l.Title,
		"url":         l.URL,
		"description": description,
		"category":    l.Category,
		"author_id":   l.AuthorID,
		"created_at":  l.CreatedAt,
	}
}
