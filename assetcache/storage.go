package assetcache

import (
	"sort"
	"sync"
)

// Storage holds every cache bucket by version name. Several Cache values
// may share one Storage, the way successive web builds share the browser's.
type Storage struct {
	mu      sync.RWMutex
	buckets map[string]map[string]*Response
}

func NewStorage() *Storage {
	return &Storage{buckets: make(map[string]map[string]*Response)}
}

// Versions lists the bucket names in sorted order.
func (s *Storage) Versions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.buckets))
	for v := range s.buckets {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s *Storage) match(version, p string) (*Response, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp, ok := s.buckets[version][p]
	return resp, ok
}

func (s *Storage) put(version, p string, resp *Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[version]
	if !ok {
		b = make(map[string]*Response)
		s.buckets[version] = b
	}
	b[p] = resp
}

// replace swaps in a whole bucket at once.
func (s *Storage) replace(version string, entries map[string]*Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[version] = entries
}

// prune deletes every bucket except keep and returns the deleted names.
func (s *Storage) prune(keep string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted []string
	for v := range s.buckets {
		if v != keep {
			delete(s.buckets, v)
			deleted = append(deleted, v)
		}
	}
	sort.Strings(deleted)
	return deleted
}

func (s *Storage) size(version string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buckets[version])
}

func (s *Storage) bytes(version string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total uint64
	for _, resp := range s.buckets[version] {
		total += uint64(len(resp.Body))
	}
	return total
}
