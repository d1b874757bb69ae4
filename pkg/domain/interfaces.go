package domain

import (
	"context"
	"time"
)

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// CounterStore exposes the atomic increment-and-fetch primitive backing the
// per-industry layout rotation. GetAndIncrement must be a single round trip
// (Redis INCR); a read-then-write pair would let two concurrent generations
// for the same industry observe the same counter value.
type CounterStore interface {
	GetAndIncrement(ctx context.Context, key string) (int64, error)
}

// ChatCompleter is the LLM boundary the generation pipeline talks to. The
// implementation must honor ctx cancellation and request JSON-only output.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, imageURLs []string) (string, error)
}

// EmailService defines transactional email operations
type EmailService interface {
	SendOnboardingInvite(toEmail, toName, businessName, slug string) error
	SendSiteLiveNotification(toEmail, toName, businessName, slug string) error
	SendPreviewOutreach(toEmail, businessName, slug string) error
}
