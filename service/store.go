package service

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/saranya-m1904/contract-risk-bot/model"
)

// AnalysisStore keeps completed analyses in memory so reports can be
// re-rendered by ID after the analyze call returns. Analyses are
// request-lifetime values; the store is a bounded cache, not a database.
type AnalysisStore struct {
	analyses    map[string]*model.Analysis
	mu          sync.RWMutex
	maxAnalyses int // 0 = unlimited
}

func NewAnalysisStore(maxAnalyses int) *AnalysisStore {
	if maxAnalyses < 0 {
		maxAnalyses = 0
	}
	return &AnalysisStore{
		analyses:    make(map[string]*model.Analysis),
		maxAnalyses: maxAnalyses,
	}
}

func (s *AnalysisStore) Save(a *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses[a.ID] = a
	s.evictIfNeeded()
}

func (s *AnalysisStore) Get(id string) *model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analyses[id]
}

// GetByTenant returns the tenant's analyses, newest first.
func (s *AnalysisStore) GetByTenant(tenant string) []*model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Analysis
	for _, a := range s.analyses {
		if a.Tenant == tenant {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *AnalysisStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
}

func (s *AnalysisStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}

// evictIfNeeded drops the oldest analyses above the cap.
// Must be called with the write lock held.
func (s *AnalysisStore) evictIfNeeded() {
	if s.maxAnalyses <= 0 || len(s.analyses) <= s.maxAnalyses {
		return
	}

	all := make([]*model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	for _, a := range all[:len(all)-s.maxAnalyses] {
		slog.Info("evicting old analysis", "analysis_id", a.ID, "created_at", a.CreatedAt)
		delete(s.analyses, a.ID)
	}
}
