package glucose

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-patient rate limiters: patient_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(patientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[patientID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[patientID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(patientID string, patientRate rate.Limit, patientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[patientID] = rate.NewLimiter(patientRate, patientBurst)
}
