// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cache

import (
	"time"

	"code.gitea.io/faceavatar/modules/setting"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a size bounded in-memory cache whose items expire after a TTL.
// A nil *Cache is valid and caches nothing.
type Cache[V any] struct {
	lru *expirable.LRU[string, V]
}

// New creates a cache holding at most size items, a ttl <= 0 keeps items until evicted
func New[V any](size int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}
}

// NewFromSetting creates the cache described by the [cache] section, it returns nil when caching is disabled
func NewFromSetting[V any](cfg setting.Cache) *Cache[V] {
	if !cfg.Enabled || cfg.Size <= 0 {
		return nil
	}
	return New[V](cfg.Size, cfg.TTL)
}

// Get returns the cached value of key
func (c *Cache[V]) Get(key string) (v V, ok bool) {
	if c == nil {
		return v, false
	}
	return c.lru.Get(key)
}

// Put stores value under key
func (c *Cache[V]) Put(key string, value V) {
	if c == nil {
		return
	}
	c.lru.Add(key, value)
}

// Delete removes key from the cache
func (c *Cache[V]) Delete(key string) {
	if c == nil {
		return
	}
	c.lru.Remove(key)
}

// Len returns the number of cached items, expired ones included until they are purged
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every cached item
func (c *Cache[V]) Purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

// GetOrLoad returns the key value from cache, calling getFunc and storing its result when the key is missing.
// Errors from getFunc are returned and never cached.
func (c *Cache[V]) GetOrLoad(key string, getFunc func() (V, error)) (value V, hit bool, err error) {
	if value, ok := c.Get(key); ok {
		return value, true, nil
	}
	value, err = getFunc()
	if err != nil {
		return value, false, err
	}
	c.Put(key, value)
	return value, false, nil
}
