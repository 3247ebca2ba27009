package globe

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/skypies/adsb"
)

// {{{ SampleCache{}

type cacheEntry struct {
	Sample  *Sample // may be nil; "not transmitting" is cacheable too
	Expires time.Time
}

// SampleCache is a TTL'd LRU of recent lookups. The clock is injected, so
// tests don't have to sleep their way through expiry.
type SampleCache struct {
	ttl   time.Duration
	clock func() time.Time
	lru   *lru.Cache[adsb.IcaoId, cacheEntry]
}

func NewSampleCache(size int, ttl time.Duration, clock func() time.Time) (*SampleCache, error) {
	if clock == nil {
		clock = time.Now
	}
	c,err := lru.New[adsb.IcaoId, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &SampleCache{ttl:ttl, clock:clock, lru:c}, nil
}

// Get returns (sample, true) on a fresh hit; a stale entry is evicted on
// the spot and reported as a miss.
func (sc *SampleCache)Get(id adsb.IcaoId) (*Sample, bool) {
	entry,ok := sc.lru.Get(id)
	if !ok { return nil, false }
	if sc.clock().After(entry.Expires) {
		sc.lru.Remove(id)
		return nil, false
	}
	return entry.Sample, true
}

func (sc *SampleCache)Put(id adsb.IcaoId, s *Sample) {
	sc.lru.Add(id, cacheEntry{Sample:s, Expires:sc.clock().Add(sc.ttl)})
}

func (sc *SampleCache)Evict(id adsb.IcaoId) { sc.lru.Remove(id) }

// }}}
// {{{ CachedSource{}

// CachedSource wraps any PositionSource with a SampleCache. Upstream
// errors are not cached; only answers are.
type CachedSource struct {
	Source PositionSource
	Cache  *SampleCache
}

func NewCachedSource(src PositionSource, size int, ttl time.Duration) (*CachedSource, error) {
	cache,err := NewSampleCache(size, ttl, nil)
	if err != nil {
		return nil, err
	}
	return &CachedSource{Source:src, Cache:cache}, nil
}

func (cs *CachedSource)Lookup(ctx context.Context, id adsb.IcaoId) (*Sample, error) {
	if s,ok := cs.Cache.Get(id); ok {
		return s, nil
	}
	s,err := cs.Source.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	cs.Cache.Put(id, s)
	return s, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
