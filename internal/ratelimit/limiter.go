package ratelimit

import "context"

// Limiter bounds how often a key may perform an action inside a window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Nop allows everything; used when no redis address is configured.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (*Nop) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}
