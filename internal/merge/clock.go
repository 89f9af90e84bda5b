package merge

import (
	"sync"
	"time"
)

// CommitClock выдает строго возрастающие временные метки коммитов (миллисекунды).
// Работает как часы Лампорта, привязанные к физическому времени: метка не меньше
// текущего времени и всегда больше предыдущей выданной или полученной извне.
type CommitClock struct {
	now  func() time.Time
	last int64
	mu   sync.Mutex
}

// NewCommitClock creates a clock backed by time.Now.
func NewCommitClock() *CommitClock {
	return &CommitClock{now: time.Now}
}

// NewCommitClockWithSource creates a clock with a custom time source. Используется в тестах.
func NewCommitClockWithSource(now func() time.Time) *CommitClock {
	return &CommitClock{now: now}
}

// Tick возвращает новую метку для локального коммита.
func (c *CommitClock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Update учитывает метку входящего коммита: последующие Tick будут больше нее.
func (c *CommitClock) Update(remote int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remote > c.last {
		c.last = remote
	}
}

// Last returns the last issued or observed timestamp.
func (c *CommitClock) Last() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
