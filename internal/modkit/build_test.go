package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"hebdate/internal/modkit/httpkit"
	phttp "hebdate/internal/platform/net/http"
	"hebdate/internal/platform/testkit"
)

type recRouter struct {
	prefixes []string
	uses     int
	gets     []string
}

func (f *recRouter) Route(p string, fn func(phttp.Router)) {
	f.prefixes = append(f.prefixes, p)
	fn(f)
}
func (f *recRouter) Group(fn func(phttp.Router))            { fn(f) }
func (f *recRouter) Use(...func(http.Handler) http.Handler) { f.uses++ }
func (f *recRouter) Handle(string, http.Handler)            {}
func (f *recRouter) Get(p string, _ phttp.Handler)          { f.gets = append(f.gets, p) }
func (f *recRouter) Post(string, phttp.Handler)             {}
func (f *recRouter) Mux() http.Handler                      { return http.NewServeMux() }

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}

	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}
	testkit.MustNotPanic(t, func() { b.Register(r) })
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }
	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	b := Build(WithName("convert"), WithPrefix("/convert"), WithMiddlewares(mid...))
	mid[0] = func(next http.Handler) http.Handler { return next }

	if b.Name != "convert" || b.Prefix != "/convert" {
		t.Fatalf("name/prefix = %q/%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Built.Mw changed after source slice mutation")
	}
}

func TestBuilt_MountOrder(t *testing.T) {
	t.Parallel()

	var order []string
	b := Build(
		WithPrefix("convert/"),
		WithMiddlewares(func(next http.Handler) http.Handler { return next }),
		WithSubrouter(func(r phttp.Router) phttp.Router { order = append(order, "sub"); return r }),
		WithRegister(func(r phttp.Router) { order = append(order, "extra"); r.Get("/extra", nil) }),
	)

	r := &recRouter{}
	b.Mount(r, func(rr httpkit.Router) {
		order = append(order, "own")
		rr.Get("/hebrew", nil)
	})

	if len(r.prefixes) != 1 || r.prefixes[0] != "/convert" {
		t.Fatalf("prefixes = %v", r.prefixes)
	}
	if r.uses != 1 {
		t.Fatalf("Use calls = %d", r.uses)
	}
	if got := len(order); got != 3 || order[0] != "sub" || order[1] != "own" || order[2] != "extra" {
		t.Fatalf("order = %v", order)
	}
	if len(r.gets) != 2 || r.gets[0] != "/hebrew" || r.gets[1] != "/extra" {
		t.Fatalf("gets = %v", r.gets)
	}
}

func TestBuilt_MountWithoutPrefixPanics(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { Build().Mount(&recRouter{}, nil) })
}
