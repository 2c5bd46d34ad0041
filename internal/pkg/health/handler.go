package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo describes the running binary for the ping endpoint
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	Uptime      string    `json:"uptime"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler reports build metadata and process uptime. Version, commit
// and build time are injected by the deploy via VERSION, GIT_COMMIT and
// BUILD_TIME.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	started := time.Now()

	info := BuildInfo{
		Version:     envOr("VERSION", "dev"),
		GitCommit:   envOr("GIT_COMMIT", "unknown"),
		BuildTime:   envOr("BUILD_TIME", "unknown"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		info.Uptime = time.Since(started).Round(time.Second).String()
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// RegisterHealthEndpoints mounts the probe endpoints. These serve
// orchestrator liveness/readiness checks; the public GET /api/health
// contract lives in the contact handler.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)
	e.GET("/ready", ok)
}
