package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/apierror"

	"github.com/gin-gonic/gin"
)

// ventana tracks request counts for one client IP within a fixed window.
type ventana struct {
	count int
	fin   time.Time
}

type limitador struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	ips       map[string]*ventana
	proxPurga time.Time
	now       func() time.Time
}

func newLimitador(limit int, window time.Duration) *limitador {
	return &limitador{limit: limit, window: window, ips: make(map[string]*ventana), now: time.Now}
}

// permitir counts one request from ip. When refused, it also returns how
// long until the window resets.
func (l *limitador) permitir(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.proxPurga) {
		for k, v := range l.ips {
			if now.After(v.fin) {
				delete(l.ips, k)
			}
		}
		l.proxPurga = now.Add(5 * l.window)
	}

	v, ok := l.ips[ip]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.window)}
		l.ips[ip] = v
	}
	v.count++
	if v.count > l.limit {
		return false, v.fin.Sub(now)
	}
	return true, 0
}

// RateLimiter limits each client IP to limit requests per window.
// A non-positive limit disables it.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	l := newLimitador(limit, window)
	return func(c *gin.Context) {
		ok, espera := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(espera.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
