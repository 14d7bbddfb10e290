package memcache_fx

import (
	"go.uber.org/fx"
	"voyago/pkg/memcache"
)

var Module = fx.Provide(provideSegmentCache)

func provideSegmentCache() memcache.SegmentCacheStore {
	return memcache.NewSegmentCache()
}
