package application

import (
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain"
)

// UsageService tracks command usage separately from audit logging.
type UsageService struct {
	repo domain.WorkspaceRepository
}

func NewUsageService(repo domain.WorkspaceRepository) *UsageService {
	return &UsageService{repo: repo}
}

// RecordCommand records that a named command was executed.
func (s *UsageService) RecordCommand(name string) error {
	stats, err := s.loadOrInitStats()
	if err != nil {
		return err
	}

	stats.TotalCommands++
	stats.LastCommandAt = time.Now()
	if name != "" {
		stats.CommandStats[name]++
	}

	return s.repo.UpdateUsage(*stats)
}

// GetUsage returns the current usage statistics.
func (s *UsageService) GetUsage() (*domain.UsageStats, error) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		// Return empty stats if no usage file exists
		return &domain.UsageStats{CommandStats: make(map[string]int)}, nil
	}
	return stats, nil
}

func (s *UsageService) loadOrInitStats() (*domain.UsageStats, error) {
	stats, err := s.repo.LoadUsage()
	if err != nil || stats == nil {
		stats = &domain.UsageStats{
			CommandStats: make(map[string]int),
		}
	}
	if stats.CommandStats == nil {
		stats.CommandStats = make(map[string]int)
	}
	return stats, nil
}
