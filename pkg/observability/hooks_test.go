package observability

import (
	"context"
	"testing"
	"time"
)

type testPipelineHooks struct {
	NoopPipelineHooks
	renders int
}

func (h *testPipelineHooks) OnRender(context.Context, string, string, int, time.Duration, error) {
	h.renders++
}

type testCacheHooks struct {
	NoopCacheHooks
	hits []string
}

func (h *testCacheHooks) OnCacheHit(_ context.Context, kind string) { h.hits = append(h.hits, kind) }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	c := &testCacheHooks{}
	SetCacheHooks(c)

	Pipeline().OnRender(context.Background(), "Order", "svg", 10, time.Millisecond, nil)
	Cache().OnCacheHit(context.Background(), KindArtifact)
	if p.renders != 1 {
		t.Errorf("renders = %d, want 1", p.renders)
	}
	if len(c.hits) != 1 || c.hits[0] != KindArtifact {
		t.Errorf("hits = %v", c.hits)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the registered hooks")
	}
	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should keep the no-op hooks")
	}
}
