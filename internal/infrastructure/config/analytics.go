package config

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/paceline/pkg/domain/analytics"
	"github.com/felixgeelhaar/paceline/pkg/storage"
	"gopkg.in/yaml.v3"
)

const analyticsConfigFile = "analytics.yaml"

// AnalyticsConfig stores workspace-level overrides for the analytics
// boundaries. Zero fields fall back to the built-in defaults.
type AnalyticsConfig struct {
	SlopeThreshold      float64 `yaml:"slope_threshold"`
	ZScoreThreshold     float64 `yaml:"z_score_threshold"`
	MovingAverageWindow int     `yaml:"moving_average_window"`
}

func LoadAnalyticsConfig(root string) (*AnalyticsConfig, error) {
	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(analyticsConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read analytics config: %w", err)
	}

	var cfg AnalyticsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics config: %w", err)
	}

	return &cfg, nil
}

func SaveAnalyticsConfig(root string, cfg *AnalyticsConfig) error {
	if cfg == nil {
		return fmt.Errorf("analytics config is nil")
	}

	repo := storage.NewFilesystemRepository(root)
	path, err := repo.ResolvePath(analyticsConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Thresholds resolves the config into validated analytics boundaries,
// filling unset fields with the defaults. A nil receiver yields the
// defaults unchanged.
func (cfg *AnalyticsConfig) Thresholds() (analytics.Thresholds, error) {
	defaults := analytics.DefaultThresholds()
	if cfg == nil {
		return defaults, nil
	}

	slope := cfg.SlopeThreshold
	if slope == 0 {
		slope = defaults.SlopeThreshold
	}
	zscore := cfg.ZScoreThreshold
	if zscore == 0 {
		zscore = defaults.ZScoreThreshold
	}
	window := cfg.MovingAverageWindow
	if window == 0 {
		window = defaults.MovingAverageWindow
	}

	return analytics.NewThresholds(slope, zscore, window)
}
