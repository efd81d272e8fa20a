// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package cache contains cache implementations.
package cache

import (
	"container/list"
	"sync"
)

// LRU implements a fixed-size LRU cache with string keys.
// It can be used concurrently from multiple goroutines.
type LRU struct {
	m   map[string]*lruEntry // indexed by key
	ls  list.List            // contains keys, oldest in front
	mu  sync.Mutex           // protects m and ls
	max int                  // maximum items to store
}

// NewLRU returns a new LRU that will hold up to max items.
// A max of 0 disables caching entirely.
func NewLRU(max int) *LRU { return &LRU{m: make(map[string]*lruEntry), max: max} }

type lruEntry struct {
	el  *list.Element // element in LRU.ls
	val interface{}   // value associated with key
}

// Get returns the value associated with key.
// If the key isn't present in the map, nil and false are returned.
func (lru *LRU) Get(key string) (val interface{}, ok bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	ent, ok := lru.m[key]
	if !ok {
		return nil, false
	}
	lru.ls.MoveToBack(ent.el)
	return ent.val, true
}

// Set saves a mapping from key to val, evicting the least-recently-used
// entries if the cache is full.
func (lru *LRU) Set(key string, val interface{}) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if lru.max == 0 {
		return
	}

	if ent, ok := lru.m[key]; ok {
		ent.val = val
		lru.ls.MoveToBack(ent.el)
		return
	}

	// Shrink the cache down to just below the maximum size.
	for lru.ls.Len() >= lru.max {
		el := lru.ls.Front()
		delete(lru.m, el.Value.(string))
		lru.ls.Remove(el)
	}

	lru.m[key] = &lruEntry{lru.ls.PushBack(key), val}
}

// Len returns the number of items currently held by the cache.
func (lru *LRU) Len() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.ls.Len()
}
