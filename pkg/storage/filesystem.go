package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
	"github.com/felixgeelhaar/paceline/pkg/domain/program"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
	"gopkg.in/yaml.v3"
)

const PacelineDir = ".paceline"
const ProgramFile = "program.yaml"
const SamplesFile = "samples.yaml"
const ActivitiesFile = "activities.yaml"
const SnapshotsFile = "snapshots.json"
const EventsFile = "events.jsonl"
const UsageFile = "usage.json"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

// Compile-time check that the filesystem layout satisfies the repository contract
var _ domain.WorkspaceRepository = (*FilesystemRepository)(nil)

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .paceline directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	// Base directory is strictly root/.paceline
	baseDir := filepath.Join(r.root, PacelineDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	// Check for traversal and ensure it's a direct child (no nested subdirs in .paceline for now)
	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, PacelineDir)
	// G301: Use 0700 for directories
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .paceline directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, PacelineDir))
	return err == nil
}

func (r *FilesystemRepository) SaveProgram(p *program.Program) error {
	path, err := r.ResolvePath(ProgramFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal program: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadProgram() (*program.Program, error) {
	retryer := retry.New[*program.Program](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*program.Program, error) {
		path, err := r.ResolvePath(ProgramFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read program file: %w", err)
		}

		var p program.Program
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal program: %w", err)
		}

		return &p, nil
	})
}

func (r *FilesystemRepository) SaveSamples(samples []evm.MetricSample) error {
	path, err := r.ResolvePath(SamplesFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(samples)
	if err != nil {
		return fmt.Errorf("failed to marshal samples: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadSamples() ([]evm.MetricSample, error) {
	retryer := retry.New[[]evm.MetricSample](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) ([]evm.MetricSample, error) {
		path, err := r.ResolvePath(SamplesFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return []evm.MetricSample{}, nil
			}
			return nil, fmt.Errorf("failed to read samples file: %w", err)
		}

		var samples []evm.MetricSample
		if err := yaml.Unmarshal(data, &samples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal samples: %w", err)
		}
		for i, s := range samples {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("sample %d (%s): %w", i, s.Date.Format("2006-01-02"), err)
			}
		}

		return samples, nil
	})
}

func (r *FilesystemRepository) SaveActivities(activities []schedule.Activity) error {
	path, err := r.ResolvePath(ActivitiesFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(activities)
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadActivities() ([]schedule.Activity, error) {
	path, err := r.ResolvePath(ActivitiesFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []schedule.Activity{}, nil
		}
		return nil, fmt.Errorf("failed to read activities file: %w", err)
	}

	var activities []schedule.Activity
	if err := yaml.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
	}

	return activities, nil
}

func (r *FilesystemRepository) UpdateUsage(stats domain.UsageStats) error {
	path, err := r.ResolvePath(UsageFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal usage stats: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func (r *FilesystemRepository) LoadUsage() (*domain.UsageStats, error) {
	path, err := r.ResolvePath(UsageFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.UsageStats{}, nil
		}
		return nil, fmt.Errorf("failed to read usage file: %w", err)
	}

	var stats domain.UsageStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal usage stats: %w", err)
	}

	return &stats, nil
}
