package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCacheConfig LRU缓存配置
type LRUCacheConfig struct {
	// 最大缓存项数
	MaxSize int `json:"max_size" yaml:"max_size" env:"LRU_CACHE_MAX_SIZE" default:"1000"`

	// 默认过期时间，0 表示永不过期
	DefaultExpiration time.Duration `json:"default_expiration" yaml:"default_expiration" env:"LRU_CACHE_DEFAULT_EXPIRATION" default:"0"`
}

// LRUCache 基于hashicorp/golang-lru的带过期时间的类型化缓存，并发安全
type LRUCache[K comparable, V any] struct {
	cache  *lru.Cache[K, lruCacheItem[V]]
	config LRUCacheConfig
}

// lruCacheItem LRU缓存项
type lruCacheItem[V any] struct {
	value      V
	expiration time.Time
}

// NewLRUCache 创建LRU缓存
func NewLRUCache[K comparable, V any](config LRUCacheConfig) *LRUCache[K, V] {
	if config.MaxSize <= 0 {
		config.MaxSize = 1000
	}
	c, err := lru.New[K, lruCacheItem[V]](config.MaxSize)
	if err != nil {
		// 如果创建失败，使用默认大小
		c, _ = lru.New[K, lruCacheItem[V]](1000)
	}
	return &LRUCache[K, V]{cache: c, config: config}
}

// Get 获取缓存值，过期项会被移除
func (lc *LRUCache[K, V]) Get(key K) (V, bool) {
	item, ok := lc.cache.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	// 检查是否过期
	if item.expired(time.Now()) {
		lc.cache.Remove(key)
		var zero V
		return zero, false
	}
	return item.value, true
}

// Set 使用默认过期时间设置缓存值
func (lc *LRUCache[K, V]) Set(key K, value V) {
	lc.SetWithExpiration(key, value, lc.config.DefaultExpiration)
}

// SetWithExpiration 设置缓存值，expiration <= 0 表示永不过期
func (lc *LRUCache[K, V]) SetWithExpiration(key K, value V, expiration time.Duration) {
	var exp time.Time
	if expiration > 0 {
		exp = time.Now().Add(expiration)
	}
	lc.cache.Add(key, lruCacheItem[V]{value: value, expiration: exp})
}

// Delete 删除缓存
func (lc *LRUCache[K, V]) Delete(key K) {
	lc.cache.Remove(key)
}

// Exists 检查键是否存在
func (lc *LRUCache[K, V]) Exists(key K) bool {
	_, ok := lc.Get(key)
	return ok
}

// Len 当前缓存项数（包含尚未清理的过期项）
func (lc *LRUCache[K, V]) Len() int {
	return lc.cache.Len()
}

// Clear 清空所有缓存
func (lc *LRUCache[K, V]) Clear() {
	lc.cache.Purge()
}

func (i lruCacheItem[V]) expired(now time.Time) bool {
	return !i.expiration.IsZero() && now.After(i.expiration)
}
