package middleware

import (
	"api/config"
	"sync"
	"time"
)

// LoginLimiter applies the configured failed-attempt cooldowns per login
// identifier (phone or email). Successful logins clear the counter.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempts
	cfg      config.LoginRateLimitConfig
}

type loginAttempts struct {
	failures    int
	blockedTill time.Time
}

func NewLoginLimiter(cfg config.LoginRateLimitConfig) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string]*loginAttempts),
		cfg:      cfg,
	}
}

// Blocked reports whether the identifier is currently in a cooldown.
func (l *LoginLimiter) Blocked(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.attempts[identifier]
	if !ok {
		return false
	}
	return time.Now().Before(entry.blockedTill)
}

// RecordFailure counts a failed credential check and starts a cooldown
// when a threshold is crossed.
func (l *LoginLimiter) RecordFailure(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.attempts[identifier]
	if !ok {
		entry = &loginAttempts{}
		l.attempts[identifier] = entry
	}
	entry.failures++

	switch {
	case entry.failures >= l.cfg.AttemptsThreshold2:
		entry.blockedTill = time.Now().Add(l.cfg.CooldownDuration2)
	case entry.failures >= l.cfg.AttemptsThreshold1:
		entry.blockedTill = time.Now().Add(l.cfg.CooldownDuration1)
	}
}

// RecordSuccess clears the failure counter for the identifier.
func (l *LoginLimiter) RecordSuccess(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, identifier)
}
