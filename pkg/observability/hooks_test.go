package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Widget hooks
	w := NoopWidgetHooks{}
	w.OnRender("wheel-1", 6, 216, time.Millisecond)
	w.OnSelect("wheel-1", 3)
	w.OnReject("wheel-1", "wheel-radius", nil)

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// Server hooks
	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/wheel.svg")
	s.OnResponse(ctx, "GET", "/wheel.svg", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Widget().(NoopWidgetHooks); !ok {
		t.Error("Widget() should return NoopWidgetHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	// Set custom hooks
	customWidget := &testWidgetHooks{}
	SetWidgetHooks(customWidget)
	if Widget() != customWidget {
		t.Error("SetWidgetHooks should set custom hooks")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Widget().(NoopWidgetHooks); !ok {
		t.Error("Reset() should restore NoopWidgetHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Reset() should restore NoopServerHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testWidgetHooks{}
	SetWidgetHooks(custom)

	// Setting nil should be ignored
	SetWidgetHooks(nil)

	if Widget() != custom {
		t.Error("SetWidgetHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testWidgetHooks struct{ NoopWidgetHooks }
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)

	Install(h)
	defer Reset()
	if Widget() != h || Pipeline() != h || Cache() != h || Server() != h {
		t.Fatal("Install should register the hooks for every category")
	}

	Widget().OnSelect("wheel-1", 2)
	Cache().OnCacheSet(context.Background(), "artifact", 512)
	Pipeline().OnRenderComplete(context.Background(), []string{"png"}, time.Millisecond, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"hooks", "widget select", "index=2", "cache set", "bytes=512", "export failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
