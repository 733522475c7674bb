package arxivweb

import (
	"container/list"
	"sync"
)

// paperLRU is a thread-safe LRU cache for paper-detail lookups keyed by
// arXiv ID. Paper pages and the BibTeX endpoints hit the same rows
// repeatedly; this keeps the hot set out of SQLite.
type paperLRU struct {
	capacity int
	cache    map[string]*list.Element
	list     *list.List
	mu       sync.Mutex
}

type paperEntry struct {
	key   string
	paper *Paper
}

func newPaperLRU(capacity int) *paperLRU {
	if capacity <= 0 {
		capacity = 10000
	}
	return &paperLRU{
		capacity: capacity,
		cache:    make(map[string]*list.Element),
		list:     list.New(),
	}
}

func (lru *paperLRU) get(key string) (*Paper, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if elem, ok := lru.cache[key]; ok {
		lru.list.MoveToFront(elem)
		return elem.Value.(*paperEntry).paper, true
	}
	return nil, false
}

func (lru *paperLRU) put(key string, paper *Paper) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if elem, ok := lru.cache[key]; ok {
		elem.Value.(*paperEntry).paper = paper
		lru.list.MoveToFront(elem)
		return
	}

	if lru.list.Len() >= lru.capacity {
		back := lru.list.Back()
		if back != nil {
			delete(lru.cache, back.Value.(*paperEntry).key)
			lru.list.Remove(back)
		}
	}

	elem := lru.list.PushFront(&paperEntry{key: key, paper: paper})
	lru.cache[key] = elem
}

func (lru *paperLRU) size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.cache)
}
