package analyze

import (
	"context"
	"testing"
)

type fakeCount struct {
	queries []string
	resp    map[string]string
	err     error
}

func (f *fakeCount) SearchCount(_ context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return "", f.err
	}
	return f.resp[query], nil
}

type fakeLogo struct {
	calls int
	urls  []string
	err   error
}

func (f *fakeLogo) SearchLogo(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.calls <= len(f.urls) {
		return f.urls[f.calls-1], nil
	}
	return "", nil
}

type fakeGen struct {
	calls int
	resp  string
}

func (f *fakeGen) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.resp, nil
}

type fixedRarity string

func (f fixedRarity) Classify(string) string { return string(f) }

func newTestResolver(c CountLookup, l LogoLookup, g TextGenerator) *Resolver {
	return &Resolver{
		Counts:    NewCache(0),
		Logos:     NewCache(0),
		Count:     c,
		Logo:      l,
		Gen:       g,
		LogoPause: 0,
	}
}

func TestResolveProductionCountStages(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded integer wins without lookups", func(t *testing.T) {
		fc := &fakeCount{}
		fg := &fakeGen{resp: "should not be used"}
		r := newTestResolver(fc, nil, fg)

		got := r.ResolveProductionCount(ctx, "Ferrari F40", "Only 1,311 were built between 1987 and 1992")
		if got != "Only 1,311 were built between 1987 and 1992" {
			t.Fatalf("got %q", got)
		}
		if len(fc.queries) != 0 || fg.calls != 0 {
			t.Errorf("collaborators consulted: search=%d gen=%d", len(fc.queries), fg.calls)
		}
	})

	t.Run("years do not count as production numbers", func(t *testing.T) {
		fc := &fakeCount{resp: map[string]string{
			"Toyota Corolla production numbers": "over 50,000,000 sold worldwide",
		}}
		r := newTestResolver(fc, nil, nil)

		got := r.ResolveProductionCount(ctx, "Toyota Corolla", "2020")
		if got != "50,000,000 units" {
			t.Fatalf("got %q", got)
		}
		if len(fc.queries) != 1 {
			t.Errorf("queries: %v", fc.queries)
		}
	})

	t.Run("search stops at first phrasing with a number", func(t *testing.T) {
		fc := &fakeCount{resp: map[string]string{
			"Porsche 959 production numbers": "",
			"Porsche 959 total produced":     "a total of 337 cars",
			"Porsche 959 units built":        "999 never queried",
		}}
		fg := &fakeGen{resp: "never asked"}
		r := newTestResolver(fc, nil, fg)

		got := r.ResolveProductionCount(ctx, "Porsche 959", "")
		if got != "337 units" {
			t.Fatalf("got %q", got)
		}
		want := []string{"Porsche 959 production numbers", "Porsche 959 total produced"}
		if len(fc.queries) != 2 || fc.queries[0] != want[0] || fc.queries[1] != want[1] {
			t.Errorf("queries: %v", fc.queries)
		}
		if fg.calls != 0 {
			t.Error("generator consulted although search succeeded")
		}
	})

	t.Run("generator answer with number is formatted", func(t *testing.T) {
		r := newTestResolver(&fakeCount{}, nil, &fakeGen{resp: "About 5000 were produced."})
		if got := r.ResolveProductionCount(ctx, "McLaren F1", ""); got != "5,000 units" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("generator answer without number passes through", func(t *testing.T) {
		r := newTestResolver(&fakeCount{}, nil, &fakeGen{resp: "Quite a few, exact figures unknown"})
		if got := r.ResolveProductionCount(ctx, "McLaren F1", ""); got != "Quite a few, exact figures unknown" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("sentinel after exhausting every stage", func(t *testing.T) {
		fc := &fakeCount{}
		fg := &fakeGen{}
		r := newTestResolver(fc, nil, fg)

		got := r.ResolveProductionCount(ctx, "Koenigsegg Jesko", "")
		if got != CountUnavailable {
			t.Fatalf("got %q", got)
		}
		if len(fc.queries) != 3 || fg.calls != 1 {
			t.Errorf("stage order: search=%d gen=%d", len(fc.queries), fg.calls)
		}
		// The sentinel is cached too.
		if v, ok := r.Counts.Get("Koenigsegg Jesko"); !ok || v != CountUnavailable {
			t.Errorf("sentinel not cached: %q %v", v, ok)
		}
	})
}

func TestResolveProductionCountCaching(t *testing.T) {
	ctx := context.Background()
	fc := &fakeCount{resp: map[string]string{
		"Toyota Corolla production numbers": "12000 made",
	}}
	r := newTestResolver(fc, nil, nil)

	first := r.ResolveProductionCount(ctx, "Toyota Corolla", "")
	if first != "12,000 units" {
		t.Fatalf("first: %q", first)
	}
	second := r.ResolveProductionCount(ctx, "toyota corolla", "")
	if second != first {
		t.Fatalf("second: %q", second)
	}
	if len(fc.queries) != 1 {
		t.Errorf("provider queried %d times for the same car", len(fc.queries))
	}
}

func TestResolveLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("retries until a url appears", func(t *testing.T) {
		fl := &fakeLogo{urls: []string{"", "https://cdn.example/toyota.png"}}
		r := newTestResolver(nil, fl, nil)

		if got := r.ResolveLogo(ctx, "Toyota"); got != "https://cdn.example/toyota.png" {
			t.Fatalf("got %q", got)
		}
		if fl.calls != 2 {
			t.Errorf("calls: %d", fl.calls)
		}
		// Second resolution comes from cache.
		if got := r.ResolveLogo(ctx, "Toyota"); got != "https://cdn.example/toyota.png" {
			t.Fatalf("cached: %q", got)
		}
		if fl.calls != 2 {
			t.Errorf("cache bypassed, calls: %d", fl.calls)
		}
	})

	t.Run("negative outcome is cached", func(t *testing.T) {
		fl := &fakeLogo{}
		r := newTestResolver(nil, fl, nil)

		if got := r.ResolveLogo(ctx, "Nocorp"); got != "" {
			t.Fatalf("got %q", got)
		}
		if fl.calls != 3 {
			t.Errorf("attempts: %d", fl.calls)
		}
		if got := r.ResolveLogo(ctx, "Nocorp"); got != "" {
			t.Fatalf("cached negative: %q", got)
		}
		if fl.calls != 3 {
			t.Errorf("negative outcome not cached, calls: %d", fl.calls)
		}
	})

	t.Run("empty brand is a no-op", func(t *testing.T) {
		fl := &fakeLogo{}
		r := newTestResolver(nil, fl, nil)
		if got := r.ResolveLogo(ctx, "  "); got != "" || fl.calls != 0 {
			t.Fatalf("got %q, calls %d", got, fl.calls)
		}
	})
}

func TestCacheNormalizesKeys(t *testing.T) {
	c := NewCache(2)
	c.Put("  Toyota Corolla ", "12,000 units")
	if v, ok := c.Get("toyota corolla"); !ok || v != "12,000 units" {
		t.Fatalf("normalized lookup: %q %v", v, ok)
	}
	c.Put("Honda Civic", "a")
	c.Put("Mazda MX-5", "b")
	if c.Len() != 2 {
		t.Errorf("bound not enforced: %d", c.Len())
	}
}
