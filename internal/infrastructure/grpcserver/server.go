package grpcserver

import (
	"net"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"mappins/pkg/logger"
)

// ServiceName is the health service name reported for the pin endpoint.
const ServiceName = "mappins.Pins"

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	config Config
}

func New(cfg Config) *Server {
	s := grpc.NewServer()
	h := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, h)

	h.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &Server{
		grpc:   s,
		health: h,
		config: cfg,
	}
}

func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Bind, strconv.Itoa(int(s.config.Port)))
}

// SetServing flips the overall and pin service status.
func (s *Server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Address())
	if err != nil {
		return err
	}

	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	logger.Info("grpc health server listening", "address", lis.Addr().String())

	return s.grpc.Serve(lis)
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
