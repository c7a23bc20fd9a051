package memory

import (
	"fmt"
	"sync"

	"github.com/vadimbarashkov/url-shortener/internal/entity"
)

type codeLog struct {
	mu      sync.Mutex
	records []entity.AccessRecord
}

// AnalyticsLog keeps an ordered sequence of access records per short code.
// Appends to the same code are serialized; appends to different codes only
// contend while a new sequence is being created.
type AnalyticsLog struct {
	mu   sync.RWMutex
	logs map[string]*codeLog
}

func NewAnalyticsLog() *AnalyticsLog {
	return &AnalyticsLog{logs: make(map[string]*codeLog)}
}

func (a *AnalyticsLog) logFor(shortCode string) *codeLog {
	a.mu.RLock()
	l, ok := a.logs[shortCode]
	a.mu.RUnlock()

	if ok {
		return l
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Another appender may have created it between the two locks.
	if l, ok = a.logs[shortCode]; !ok {
		l = &codeLog{}
		a.logs[shortCode] = l
	}

	return l
}

// Append adds record to the end of the sequence for shortCode, creating the
// sequence on first use. It does not check that shortCode is mapped.
func (a *AnalyticsLog) Append(shortCode string, record entity.AccessRecord) {
	l := a.logFor(shortCode)

	l.mu.Lock()
	l.records = append(l.records, record)
	l.mu.Unlock()
}

// Get returns a copy of the records for shortCode in insertion order.
func (a *AnalyticsLog) Get(shortCode string) ([]entity.AccessRecord, error) {
	const op = "adapter.repository.memory.AnalyticsLog.Get"

	a.mu.RLock()
	l, ok := a.logs[shortCode]
	a.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAnalyticsNotFound)
	}

	l.mu.Lock()
	records := make([]entity.AccessRecord, len(l.records))
	copy(records, l.records)
	l.mu.Unlock()

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAnalyticsNotFound)
	}

	return records, nil
}
