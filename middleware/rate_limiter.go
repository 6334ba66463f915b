package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gymsphere/domain"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	ctx = context.Background()
	rdb *redis.Client
)

// RateLimitRule bounds one endpoint group. Scope decides whether the counter
// keys on the caller's IP or their authenticated account.
type RateLimitRule struct {
	MaxRequests int
	Window      time.Duration
	Algorithm   string // "fixed_window" or "sliding_window"
	Scope       string // "ip" or "user"
}

var rateLimitRules = map[string]RateLimitRule{
	// Auth endpoints are the brute-force surface, keep these tight.
	"auth_register": {
		MaxRequests: 3,
		Window:      time.Hour,
		Algorithm:   "fixed_window",
		Scope:       "ip",
	},
	"auth_login": {
		MaxRequests: 10,
		Window:      15 * time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
	// Refresh callers carry no access token, so the rule keys on IP.
	"auth_refresh": {
		MaxRequests: 30,
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},

	// Seat-grabbing endpoints. A member hammering enroll does not get to
	// starve the class for everyone else.
	"member_enroll": {
		MaxRequests: 10,
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "user",
	},
	"member_cancel": {
		MaxRequests: 5,
		Window:      10 * time.Minute,
		Algorithm:   "fixed_window",
		Scope:       "user",
	},

	// Blanket per-IP safeguard checked before everything else.
	"global_ip": {
		MaxRequests: 1000,
		Window:      time.Minute,
		Algorithm:   "sliding_window",
		Scope:       "ip",
	},
}

var defaultRule = RateLimitRule{
	MaxRequests: 60,
	Window:      time.Minute,
	Algorithm:   "sliding_window",
	Scope:       "ip",
}

func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

func ruleFor(path, method string) RateLimitRule {
	switch {
	case strings.Contains(path, "/auth/register"):
		return rateLimitRules["auth_register"]
	case strings.Contains(path, "/auth/login"):
		return rateLimitRules["auth_login"]
	case strings.Contains(path, "/auth/refresh"):
		return rateLimitRules["auth_refresh"]
	case strings.Contains(path, "/enrollments") && method == http.MethodPost:
		return rateLimitRules["member_enroll"]
	case strings.Contains(path, "/cancel") && method == http.MethodPut:
		return rateLimitRules["member_cancel"]
	default:
		return defaultRule
	}
}

func identifierFor(c *gin.Context, scope string) string {
	if scope == "user" {
		if uuid := c.GetString("userUUID"); uuid != "" {
			return "user:" + uuid
		}
	}
	return "ip:" + c.ClientIP()
}

// fixedWindowAllow increments a plain counter that expires with the window.
func fixedWindowAllow(key string, rule RateLimitRule) (bool, int, error) {
	redisKey := "rate:fw:" + key

	luaScript := `
	local key = KEYS[1]
	local expiry = ARGV[1]
	local limit = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		redis.call('SET', key, 1, 'EX', expiry)
		return {1, limit - 1}
	end

	local count = tonumber(current)
	if count >= limit then
		return {count, 0}
	end

	local new_count = redis.call('INCR', key)
	return {new_count, limit - new_count}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		int(rule.Window.Seconds()), rule.MaxRequests).Result()
	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	current := results[0].(int64)
	remaining := results[1].(int64)

	return current <= int64(rule.MaxRequests), int(remaining), nil
}

// slidingWindowAllow keeps request timestamps in a sorted set and counts the
// ones still inside the window.
func slidingWindowAllow(key string, rule RateLimitRule) (bool, int, error) {
	now := time.Now().Unix()
	windowStart := now - int64(rule.Window.Seconds())
	redisKey := "rate:sw:" + key

	luaScript := `
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

	local current = redis.call('ZCARD', key)
	if current >= max_requests then
		return {0, 0}
	end

	redis.call('ZADD', key, now, now)
	redis.call('EXPIRE', key, window_seconds + 60)

	local remaining = max_requests - current - 1
	if remaining < 0 then remaining = 0 end

	return {1, remaining}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		now, windowStart, rule.MaxRequests, int(rule.Window.Seconds())).Result()
	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	allowed := results[0].(int64) == 1
	remaining := int(results[1].(int64))

	return allowed, remaining, nil
}

func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/ping" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		// Per-IP blanket limit first.
		globalKey := "global:ip:" + c.ClientIP()
		globalAllowed, _, err := slidingWindowAllow(globalKey, rateLimitRules["global_ip"])
		if err == nil && !globalAllowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests from this address",
			})
			return
		}

		rule := ruleFor(c.Request.URL.Path, c.Request.Method)
		identifier := identifierFor(c, rule.Scope)
		fullKey := fmt.Sprintf("%s:%s:%s:%s", rule.Scope, c.Request.Method, c.Request.URL.Path, identifier)

		var allowed bool
		var remaining int
		if rule.Algorithm == "fixed_window" {
			allowed, remaining, err = fixedWindowAllow(fullKey, rule)
		} else {
			allowed, remaining, err = slidingWindowAllow(fullKey, rule)
		}
		if err != nil {
			// Redis trouble never blocks traffic.
			c.Next()
			return
		}

		if !allowed {
			log.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       fmt.Sprintf("Too many requests, please try again in %v", rule.Window),
				"retry_after": int(rule.Window.Seconds()),
			})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))

		c.Next()
	}
}

// RateLimitStatusHandler exposes the active rules, admin eyes only.
func RateLimitStatusHandler(c *gin.Context) {
	if c.GetString("role") != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Forbidden",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"rules":     rateLimitRules,
			"timestamp": time.Now().Unix(),
		},
	})
}
