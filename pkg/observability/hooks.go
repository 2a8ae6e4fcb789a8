// Package observability provides hooks for metrics and tracing.
//
// Consumers register hooks at startup to receive events about pipeline stages
// and cache lookups without the pipeline depending on any metrics backend.
// Hooks default to no-ops.
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The pipeline runner emits events as stages finish:
//
//	observability.Pipeline().OnDecompose(ctx, resource, len(subs), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Cache entry kinds passed to [CacheHooks].
const (
	KindDecomposition = "decomposition"
	KindArtifact      = "artifact"
)

// PipelineHooks receives events from the pipeline runner.
type PipelineHooks interface {
	// OnBuild follows graph construction from a facts document.
	OnBuild(ctx context.Context, facts string, nodes, edges int, duration time.Duration, err error)
	// OnDecompose follows the decomposition of a resource.
	OnDecompose(ctx context.Context, resource string, subgraphs int, duration time.Duration, err error)
	// OnRender follows rendering one subgraph to one format.
	OnRender(ctx context.Context, root, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, kind string)
	OnCacheMiss(ctx context.Context, kind string)
	OnCacheSet(ctx context.Context, kind string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuild(context.Context, string, int, int, time.Duration, error)     {}
func (NoopPipelineHooks) OnDecompose(context.Context, string, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRender(context.Context, string, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
