package main

import "time"

type Config struct {
	Port                     int           `env:"PORT" env-default:"8000" yaml:"port"`
	DatabaseURL              string        `env:"DATABASE_URL" env-default:"wanderlist.db" yaml:"database-url"`
	SecretKey                string        `env:"SECRET_KEY" env-required:"true" yaml:"secret-key"`
	AccessTokenExpireMinutes int           `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30" yaml:"access-token-expire-minutes"`
	SessionTimeout           time.Duration `env:"SESSION_TIMEOUT" env-default:"24h" yaml:"session-timeout"`
	InvitationTimeout        time.Duration `env:"INVITATION_TIMEOUT" env-default:"336h" yaml:"invitation-timeout"`
	MinPasswordLength        int           `env:"MIN_PASSWORD_LENGTH" env-default:"5" yaml:"min-password-length"`
	GoogleClientID           string        `env:"GOOGLE_CLIENT_ID" yaml:"google-client-id"`
	GoogleClientSecret       string        `env:"GOOGLE_CLIENT_SECRET" yaml:"google-client-secret"`
	OAuthRedirectURL         string        `env:"OAUTH_REDIRECT_URL" yaml:"oauth-redirect-url"`
	SmtpServer               string        `env:"SMTP_SERVER" yaml:"smtp-server"`
	SmtpPort                 int           `env:"SMTP_PORT" env-default:"587" yaml:"smtp-port"`
	SmtpUser                 string        `env:"SMTP_USER" yaml:"smtp-user"`
	SmtpPassword             string        `env:"SMTP_PASSWORD" yaml:"smtp-password"`
	FQDN                     string        `env:"FQDN" env-default:"localhost:8000" yaml:"fqdn"`
	LoginRateLimit           float64       `env:"LOGIN_RATE_LIMIT" env-default:"5" yaml:"login-rate-limit"`
	LoginRateBurst           int           `env:"LOGIN_RATE_BURST" env-default:"10" yaml:"login-rate-burst"`
	LogLevel                 string        `env:"LOG_LEVEL" env-default:"info" yaml:"log-level"`
	LogFormat                string        `env:"LOG_FORMAT" env-default:"text" yaml:"log-format"`
	BatchSize                int           `env:"INDEX_BATCH_SIZE" env-default:"100" yaml:"index-batch-size"`
}
