package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/records/internal/records/service"
	"github.com/aussiebroadwan/records/pkg/httpx"
	"github.com/aussiebroadwan/records/pkg/slogx"

	_ "github.com/aussiebroadwan/records/api/records" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.HTTPMetrics

	// One limiter per profile, shared by every route using it
	writeLimit  httpx.Middleware
	readLimit   httpx.Middleware
	probeLimit  httpx.Middleware
	publicLimit httpx.Middleware

	RecordService *service.RecordService
}

// RouterConfig carries the optional cross-cutting pieces of the router.
type RouterConfig struct {
	BuildVersion string
	CORS         httpx.CORSConfig

	// Metrics is optional; when nil no /metrics endpoint is registered.
	Metrics *httpx.HTTPMetrics

	// RateLimits defaults to httpx.DefaultRateLimits when left zero.
	RateLimits httpx.RateLimits
}

func NewRouter(svc *service.RecordService, cfg RouterConfig, logger *slog.Logger) *Router {
	limits := cfg.RateLimits
	if limits == (httpx.RateLimits{}) {
		limits = httpx.DefaultRateLimits()
	}

	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  cfg.BuildVersion,
		startTime:     time.Now(),
		logger:        logger,
		metrics:       cfg.Metrics,
		RecordService: svc,

		writeLimit:  httpx.RateLimitByIP(limits.Moderate),
		readLimit:   httpx.RateLimitByIP(limits.Lenient),
		probeLimit:  httpx.RateLimitByIP(limits.Lenient),
		publicLimit: httpx.RateLimitByIP(limits.Public),
	}

	// CORS runs first so preflights never reach the mux. Metrics must wrap
	// the mux directly to see the matched pattern.
	r.middlewares = []httpx.Middleware{
		httpx.CORS(cfg.CORS),
		slogx.HTTPMiddleware(r.logger),
	}
	if r.metrics != nil {
		r.middlewares = append(r.middlewares, r.metrics.Middleware())
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRecords()
	r.registerSystem()

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", r.metrics.Handler())
	}
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Records Data Service API
//	@version		0.1.0
//	@description	Minimal CRUD service over a single collection of named records.
//	@description
//	@description	Every response body carries a status discriminator ("ok" or "error").
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/records
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:5000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRecords() {
	h := &RecordsHandler{RecordService: r.RecordService}

	// Reads are cheap, writes share one moderate budget per client
	r.Mux.Handle("GET /api/data",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.readLimit,
		),
	)
	r.Mux.Handle("POST /api/data",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.writeLimit,
		),
	)
	r.Mux.Handle("PUT /api/data/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.writeLimit,
		),
	)
	r.Mux.Handle("DELETE /api/data/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.writeLimit,
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(),
			r.publicLimit,
		),
	)

	// Probes have their own lenient budget, separate from data reads
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.RecordService),
			r.probeLimit,
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.probeLimit,
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.RecordService),
			r.probeLimit,
		),
	)
}
