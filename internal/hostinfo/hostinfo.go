// Package hostinfo resolves the identity of the replica serving a request.
package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrEmptyHostname is returned when the operating system reports a blank hostname.
var ErrEmptyHostname = errors.New("hostname is empty")

// Resolver returns the local hostname.
type Resolver interface {
	Hostname(ctx context.Context) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context) (string, error)

func (f ResolverFunc) Hostname(ctx context.Context) (string, error) { return f(ctx) }

// System asks the operating system on every call.
func System() Resolver {
	return systemResolver{lookup: os.Hostname}
}

type systemResolver struct {
	lookup func() (string, error)
}

func (s systemResolver) Hostname(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, err := s.lookup()
	if err != nil {
		return "", fmt.Errorf("resolve hostname: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyHostname
	}
	return name, nil
}

// Static always reports name.
func Static(name string) Resolver {
	return ResolverFunc(func(context.Context) (string, error) {
		if strings.TrimSpace(name) == "" {
			return "", ErrEmptyHostname
		}
		return name, nil
	})
}

// Cached memoizes the first successful lookup of next. Failures are not cached.
func Cached(next Resolver) Resolver {
	return &cachedResolver{next: next}
}

type cachedResolver struct {
	next Resolver

	mu   sync.Mutex
	name string
}

func (c *cachedResolver) Hostname(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.name != "" {
		return c.name, nil
	}
	name, err := c.next.Hostname(ctx)
	if err != nil {
		return "", err
	}
	c.name = name
	return name, nil
}

// Resolution modes accepted by New.
const (
	ModeRequest = "request"
	ModeProcess = "process"
)

// New builds the resolver for a configured mode. A non-empty override pins
// the reported name regardless of mode.
func New(mode, override string) (Resolver, error) {
	if strings.TrimSpace(override) != "" {
		return Static(strings.TrimSpace(override)), nil
	}
	switch mode {
	case ModeRequest, "":
		return System(), nil
	case ModeProcess:
		return Cached(System()), nil
	default:
		return nil, fmt.Errorf("unknown hostname mode %q", mode)
	}
}
