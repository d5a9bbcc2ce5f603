package assetcache

import (
	"context"
	"sync"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/token"
)

// Memory keeps the asset list in process.
type Memory struct {
	mutex  sync.RWMutex
	assets []token.Properties
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(context.Context) ([]token.Properties, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]token.Properties(nil), m.assets...), nil
}

func (m *Memory) Store(_ context.Context, assets []token.Properties) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.assets = append([]token.Properties(nil), assets...)
	return nil
}

// Clear drops the cached list so the next read goes to the chain.
func (m *Memory) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.assets = nil
}
