package globe

import (
	"context"
	"testing"
	"time"

	"github.com/skypies/adsb"
)

type fakeSource struct {
	calls  int
	sample *Sample
}

func (fs *fakeSource)Lookup(ctx context.Context, id adsb.IcaoId) (*Sample, error) {
	fs.calls++
	return fs.sample, nil
}

func TestSampleCacheExpiry(t *testing.T) {
	now := time.Date(2024, 12, 12, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	sc,err := NewSampleCache(8, 30*time.Second, clock)
	if err != nil { t.Fatal(err) }

	id := adsb.IcaoId("A0B1C2")
	sc.Put(id, &Sample{IcaoId:id})

	if s,ok := sc.Get(id); !ok || s == nil {
		t.Fatal("expected a fresh hit")
	}

	now = now.Add(29 * time.Second)
	if _,ok := sc.Get(id); !ok {
		t.Error("entry expired early")
	}

	now = now.Add(2 * time.Second)
	if _,ok := sc.Get(id); ok {
		t.Error("entry outlived its ttl")
	}
}

func TestSampleCacheNilSample(t *testing.T) {
	sc,_ := NewSampleCache(8, time.Minute, nil)

	// "not transmitting" is an answer worth caching
	sc.Put("A0B1C2", nil)
	if s,ok := sc.Get("A0B1C2"); !ok {
		t.Error("expected a hit")
	} else if s != nil {
		t.Errorf("expected a cached nil, got %v", s)
	}

	sc.Evict("A0B1C2")
	if _,ok := sc.Get("A0B1C2"); ok {
		t.Error("evicted entry still present")
	}
}

func TestCachedSource(t *testing.T) {
	fs := &fakeSource{sample: &Sample{IcaoId:"A0B1C2"}}
	cs,err := NewCachedSource(fs, 8, time.Minute)
	if err != nil { t.Fatal(err) }

	ctx := context.Background()
	for i:=0; i<3; i++ {
		if s,err := cs.Lookup(ctx, "A0B1C2"); err != nil || s == nil {
			t.Fatalf("Lookup %d: %v, %v", i, s, err)
		}
	}
	if fs.calls != 1 {
		t.Errorf("upstream called %d times, want 1", fs.calls)
	}
}
