package server

import (
	"sync"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
)

// Library is the layer catalog and weight table shared by every session.
// Sessions generate from snapshots; reloads swap uploads under the write lock,
// so no catalog is mutated while a generation is reading it.
type Library struct {
	mu      sync.RWMutex
	cat     *catalog.Catalog
	table   rarity.Table
	version uint64
}

// NewLibrary takes ownership of cat.
func NewLibrary(cat *catalog.Catalog, table rarity.Table) *Library {
	return &Library{cat: cat, table: table}
}

// Snapshot returns a private catalog copy and the current weights.
func (l *Library) Snapshot() (*catalog.Catalog, rarity.Table) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cat.Snapshot(), l.table
}

// ReplaceUploads swaps every upload slot at once.
func (l *Library) ReplaceUploads(uploads map[catalog.Category][]catalog.Asset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cat.ReplaceUploads(uploads)
	l.version++
}

// SetTable replaces the weight table.
func (l *Library) SetTable(table rarity.Table) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = table
	l.version++
}

// Version increases with every change, letting sessions notice reloads.
func (l *Library) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}
