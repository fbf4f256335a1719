// Package workspace is a small fixed-capacity table of named slots. A host
// program uses it to keep values, such as parsed expressions, under short
// names between commands.
package workspace

import "sync"

const (
	// Size is the number of slots in a Store.
	Size = 10
	// NameSize bounds names. It counts a terminator, so names may hold at
	// most NameSize-1 bytes.
	NameSize = 10
)

// Status is the outcome of Set.
type Status int

const (
	// OK means the value was stored.
	OK Status = iota
	// Full means every slot is in use by another name.
	Full
	// BadName means the name is empty or too long.
	BadName
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Full:
		return "FULL"
	case BadName:
		return "BAD_NAME"
	default:
		return "Status(?)"
	}
}

type slot struct {
	name string
	data interface{}
}

// Store maps names to values. Lookups are linear scans in slot order. A Store
// is safe for concurrent use. The zero Store is empty and ready to use.
type Store struct {
	mu    sync.Mutex
	slots [Size]slot
	// last bounds the slots that may be set; no slot past it is set. It is
	// -1 when the store is known to be empty.
	last int
}

// New creates an empty store.
func New() *Store {
	s := new(Store)
	s.Init()
	return s
}

// Init unsets every slot.
func (s *Store) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = [Size]slot{}
	s.last = -1
}

// find returns the index of the slot holding name, or -1. Must hold s.mu.
func (s *Store) find(name string) int {
	for i := 0; i < Size && i <= s.last; i++ {
		if s.slots[i].name != "" && s.slots[i].name == name {
			return i
		}
	}
	return -1
}

// Set stores data under name, replacing any value already there. If name is
// new, it takes the first unset slot.
func (s *Store) Set(name string, data interface{}) Status {
	if name == "" || len(name) >= NameSize {
		return BadName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(name)
	if i < 0 {
		for k := range s.slots {
			if s.slots[k].name == "" {
				i = k
				break
			}
		}
		if i < 0 {
			return Full
		}
	}
	s.slots[i] = slot{name: name, data: data}
	if i > s.last {
		s.last = i
	}
	return OK
}

// Get returns the value stored under name. The second result is false if
// name is not set.
func (s *Store) Get(name string) (interface{}, bool) {
	if name == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(name)
	if i < 0 {
		return nil, false
	}
	return s.slots[i].data, true
}

// Unset removes name from the store. It is not an error if name is not set.
func (s *Store) Unset(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(name)
	if i < 0 {
		return
	}
	s.slots[i] = slot{}
	for s.last >= 0 && s.slots[s.last].name == "" {
		s.last--
	}
}

// Names returns the names that are set, in slot order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for i := 0; i < Size && i <= s.last; i++ {
		if s.slots[i].name != "" {
			names = append(names, s.slots[i].name)
		}
	}
	return names
}
