package httpx

import (
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/records/pkg/slogx"
)

// MsgTooManyRequests is the message of every 429 response.
const MsgTooManyRequests = "Too many requests. Please try again later."

// bucketIdleTTL is how long a client's bucket survives without traffic.
const bucketIdleTTL = 10 * time.Minute

// RateLimit is a token bucket refilled at Requests per Window that holds at
// most Burst tokens.
type RateLimit struct {
	Requests int
	Window   time.Duration
	Burst    int
}

// RateLimits are the per-IP profiles applied to the records API.
//
// Override any field with RATELIMIT_{MODERATE,LENIENT,PUBLIC}_{REQUESTS,WINDOW_SEC,BURST}.
type RateLimits struct {
	Moderate RateLimit // writes: POST, PUT and DELETE on /api/data
	Lenient  RateLimit // reads and health checks
	Public   RateLimit // the API banner
}

// DefaultRateLimits returns the production profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Moderate: RateLimit{Requests: 60, Window: time.Minute, Burst: 20},
		Lenient:  RateLimit{Requests: 300, Window: time.Minute, Burst: 100},
		Public:   RateLimit{Requests: 1000, Window: time.Minute, Burst: 1000},
	}
}

// RateLimitsFromEnv applies environment overrides on top of base. Values that
// are not positive integers are ignored.
func RateLimitsFromEnv(base RateLimits) RateLimits {
	base.Moderate = base.Moderate.withEnv("MODERATE")
	base.Lenient = base.Lenient.withEnv("LENIENT")
	base.Public = base.Public.withEnv("PUBLIC")
	return base
}

func (l RateLimit) withEnv(profile string) RateLimit {
	prefix := "RATELIMIT_" + profile + "_"
	if n, ok := positiveEnv(prefix + "REQUESTS"); ok {
		l.Requests = n
	}
	if n, ok := positiveEnv(prefix + "WINDOW_SEC"); ok {
		l.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv(prefix + "BURST"); ok {
		l.Burst = n
	}
	return l
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

func (l RateLimit) perSecond() rate.Limit {
	if l.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(l.Requests) / l.Window.Seconds())
}

// RateLimitByIP returns a middleware that takes one token per request from
// the client IP's bucket. Every route wrapped by the same returned Middleware
// draws from the same buckets.
func RateLimitByIP(limit RateLimit) Middleware {
	buckets := newIPBuckets(limit, time.Now)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			wait, ok := buckets.take(ip)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(math.Ceil(wait.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
			w.Header().Set("X-RateLimit-Window", limit.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"client_ip", ip,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"status":  "error",
				"message": MsgTooManyRequests,
			})
		})
	}
}

// ClientIP returns the caller's address: the first X-Forwarded-For hop, then
// X-Real-IP, then the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipBuckets holds one token bucket per client IP. Buckets idle for longer
// than bucketIdleTTL are dropped by a sweep that runs at most once per TTL.
type ipBuckets struct {
	limit RateLimit
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newIPBuckets(limit RateLimit, now func() time.Time) *ipBuckets {
	return &ipBuckets{
		limit:     limit,
		now:       now,
		buckets:   make(map[string]*bucket),
		lastSweep: now(),
	}
}

// take spends a token for ip. When none is left it reports how long until
// the next one.
func (b *ipBuckets) take(ip string) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)

	bk, ok := b.buckets[ip]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(b.limit.perSecond(), b.limit.Burst)}
		b.buckets[ip] = bk
	}
	bk.lastSeen = now

	if bk.limiter.AllowN(now, 1) {
		return 0, true
	}

	res := bk.limiter.ReserveN(now, 1)
	if !res.OK() {
		return b.limit.Window, false
	}
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return wait, false
}

func (b *ipBuckets) sweep(now time.Time) {
	if now.Sub(b.lastSweep) < bucketIdleTTL {
		return
	}
	b.lastSweep = now

	for ip, bk := range b.buckets {
		if now.Sub(bk.lastSeen) > bucketIdleTTL {
			delete(b.buckets, ip)
		}
	}
}
