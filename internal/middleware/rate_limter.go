package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Fabriciocypreste/novonovo/internal/api/dto"
)

// ==================== ClientRateLimiter 客户端限流器 ====================

// ClientRateLimiter 按客户端 IP 分别限流
// 防止单个客户端频繁调用生成接口耗尽供应商配额
type ClientRateLimiter struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu      sync.Mutex
	clients map[string]*clientEntry
}

// clientEntry 限流条目
type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientRateLimiter rps 为每客户端每秒请求数
func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	if burst <= 0 {
		burst = int(math.Max(1, math.Ceil(rps)))
	}
	return &ClientRateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     10 * time.Minute,
		clients: make(map[string]*clientEntry),
	}
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 建议等待时间
}

// Check 消耗一个令牌
func (r *ClientRateLimiter) Check(key string) CheckResult {
	now := time.Now()
	limiter := r.get(key, now)

	res := limiter.ReserveN(now, 1)
	if !res.OK() {
		return CheckResult{Allowed: false, RetryAfter: time.Second}
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return CheckResult{Allowed: false, RetryAfter: delay}
	}
	return CheckResult{Allowed: true}
}

func (r *ClientRateLimiter) get(key string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = entry
		r.evict(now)
	}
	entry.lastSeen = now
	return entry.limiter
}

// evict 新客户端加入时顺带清理长时间未出现的条目
func (r *ClientRateLimiter) evict(now time.Time) {
	for key, entry := range r.clients {
		if now.Sub(entry.lastSeen) > r.ttl {
			delete(r.clients, key)
		}
	}
}

// ==================== Gin 中间件 ====================

// RateLimit 超出限额返回 429，rps<=0 时不限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewClientRateLimiter(rps, burst)

	return func(c *gin.Context) {
		res := limiter.Check(c.ClientIP())
		if !res.Allowed {
			seconds := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Response{
				Success: false,
				Error:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
