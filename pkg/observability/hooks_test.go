package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopResolveHooks{}
	r.OnResolve(ctx, "/xl/workbook.xml", "http://example.com/rel", false, nil)

	z := NoopResizeHooks{}
	z.OnResizeStart(ctx, 1.0)
	z.OnResizeComplete(ctx, 3, 2, time.Millisecond, nil)
	z.OnDecodeFailure(ctx, errors.New("bad image"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "imagesize")
	c.OnCacheMiss(ctx, "imagesize")
	c.OnCacheSet(ctx, "imagesize", 64)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Resolve() should return NoopResolveHooks by default")
	}
	if _, ok := Resize().(NoopResizeHooks); !ok {
		t.Error("Resize() should return NoopResizeHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customResolve := &testResolveHooks{}
	SetResolveHooks(customResolve)
	if Resolve() != customResolve {
		t.Error("SetResolveHooks should set custom hooks")
	}

	customResize := &testResizeHooks{}
	SetResizeHooks(customResize)
	if Resize() != customResize {
		t.Error("SetResizeHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Resize().(NoopResizeHooks); !ok {
		t.Error("Reset() should restore NoopResizeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testResizeHooks{}
	SetResizeHooks(custom)
	SetResizeHooks(nil)

	if Resize() != custom {
		t.Error("SetResizeHooks(nil) should be ignored")
	}
}

type testResolveHooks struct{ NoopResolveHooks }
type testResizeHooks struct{ NoopResizeHooks }
type testCacheHooks struct{ NoopCacheHooks }
