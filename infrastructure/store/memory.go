// Package store guarda o snapshot ativo da sessão de análise em memória
package store

import (
	"sync"

	"github.com/vfg2006/influencer-analytics-api/internal/domain"
)

// SessionStore mantém o snapshot corrente sob a disciplina "muitos leitores,
// zero escritores": os cálculos leem o mesmo snapshot imutável em paralelo e
// um upload troca o snapshot inteiro de uma vez. Não existe atualização
// incremental; todo valor derivado é recalculado a partir do novo snapshot
type SessionStore struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		dataset: &domain.Dataset{Source: domain.DatasetSourceSeed},
	}
}

// Snapshot retorna o snapshot ativo. O valor retornado nunca é modificado
// pelos consumidores
func (s *SessionStore) Snapshot() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Replace troca o snapshot ativo pelo novo conjunto de dados
func (s *SessionStore) Replace(dataset *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
}
