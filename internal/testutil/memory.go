// Package testutil provides in-memory repository fakes and a scripted text
// generator so handler and service tests run without postgres or a live
// model endpoint.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"skillpath/internal/models"
)

// MemoryAssessmentRepo is an in-memory AssessmentRepository.
type MemoryAssessmentRepo struct {
	mu      sync.Mutex
	records map[string]models.SkillAssessment
}

func NewMemoryAssessmentRepo() *MemoryAssessmentRepo {
	return &MemoryAssessmentRepo{records: make(map[string]models.SkillAssessment)}
}

func (m *MemoryAssessmentRepo) Get(id string) (*models.SkillAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.records[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *MemoryAssessmentRepo) Put(a *models.SkillAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[a.ID] = *a
	return nil
}

func (m *MemoryAssessmentRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MemoryAssessmentRepo) Scan() ([]models.SkillAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.SkillAssessment, 0, len(m.records))
	for _, a := range m.records {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MemoryLearningPathRepo is an in-memory LearningPathRepository.
type MemoryLearningPathRepo struct {
	mu      sync.Mutex
	records map[string]models.LearningPath
}

func NewMemoryLearningPathRepo() *MemoryLearningPathRepo {
	return &MemoryLearningPathRepo{records: make(map[string]models.LearningPath)}
}

func (m *MemoryLearningPathRepo) Get(id string) (*models.LearningPath, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.records[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *MemoryLearningPathRepo) Put(p *models.LearningPath) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[p.ID] = *p
	return nil
}

func (m *MemoryLearningPathRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MemoryLearningPathRepo) Scan() ([]models.LearningPath, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.LearningPath, 0, len(m.records))
	for _, p := range m.records {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MemoryRecommendationRepo is an in-memory RecommendationRepository. Set
// FailPuts to simulate a store outage on writes.
type MemoryRecommendationRepo struct {
	mu       sync.Mutex
	records  map[string]models.RecommendationBatch
	FailPuts bool
}

func NewMemoryRecommendationRepo() *MemoryRecommendationRepo {
	return &MemoryRecommendationRepo{records: make(map[string]models.RecommendationBatch)}
}

func (m *MemoryRecommendationRepo) Get(id string) (*models.RecommendationBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.records[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *MemoryRecommendationRepo) Put(b *models.RecommendationBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts {
		return fmt.Errorf("simulated store failure")
	}
	m.records[b.ID] = *b
	return nil
}

func (m *MemoryRecommendationRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MemoryRecommendationRepo) Scan() ([]models.RecommendationBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RecommendationBatch, 0, len(m.records))
	for _, b := range m.records {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Len reports the number of stored batches.
func (m *MemoryRecommendationRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// ScriptedTextGenerator returns a fixed response or error on every call.
type ScriptedTextGenerator struct {
	Response string
	Err      error
	Calls    int
}

func (s *ScriptedTextGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
