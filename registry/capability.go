package registry

import (
	"sort"
	"sync"
)

// Capability is the execution authorization token. An identity must be
// listed in it before it may execute proposals or drain the queue.
//
// Growing the set performs no caller check here; guarding who holds a
// *Capability at all is the responsibility of whoever the system hands
// it to at initialization.
type Capability struct {
	mtx sync.RWMutex

	executors map[string]struct{}
}

func NewCapability() *Capability {
	return &Capability{
		executors: make(map[string]struct{}),
	}
}

func (c *Capability) AddExecutor(executor string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.executors[executor] = struct{}{}
}

func (c *Capability) Authorized(executor string) bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	_, ok := c.executors[executor]
	return ok
}

func (c *Capability) Executors() []string {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	list := make([]string, 0, len(c.executors))
	for e := range c.executors {
		list = append(list, e)
	}
	sort.Strings(list)
	return list
}
