package config

import "time"

// Login attempt cooldown configuration
type LoginRateLimitConfig struct {
	AttemptsThreshold1 int           // Number of failed logins before first cooldown
	CooldownDuration1  time.Duration // First cooldown duration
	AttemptsThreshold2 int           // Number of failed logins before second cooldown
	CooldownDuration2  time.Duration // Second cooldown duration
}

var DefaultLoginRateLimitConfig = LoginRateLimitConfig{
	AttemptsThreshold1: 5,
	CooldownDuration1:  2 * time.Minute,
	AttemptsThreshold2: 10,
	CooldownDuration2:  10 * time.Minute,
}
