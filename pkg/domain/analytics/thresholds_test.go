package analytics

import (
	"errors"
	"testing"
)

func TestNewThresholds(t *testing.T) {
	tests := []struct {
		name    string
		slope   float64
		zscore  float64
		window  int
		wantErr error
	}{
		{name: "defaults are valid", slope: DefaultSlopeThreshold, zscore: DefaultZScoreThreshold, window: DefaultMovingAverageWindow},
		{name: "custom values", slope: 0.05, zscore: 1.5, window: 7},
		{name: "zero slope threshold", slope: 0, zscore: 2, window: 3, wantErr: ErrInvalidSlopeThreshold},
		{name: "negative z-score threshold", slope: 0.01, zscore: -2, window: 3, wantErr: ErrInvalidZScoreThreshold},
		{name: "zero window", slope: 0.01, zscore: 2, window: 0, wantErr: ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewThresholds(tt.slope, tt.zscore, tt.window)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewThresholds error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewThresholds failed: %v", err)
			}
			if got.SlopeThreshold != tt.slope || got.ZScoreThreshold != tt.zscore || got.MovingAverageWindow != tt.window {
				t.Errorf("NewThresholds = %+v, want %v/%v/%d", got, tt.slope, tt.zscore, tt.window)
			}
		})
	}
}

func TestDefaultThresholds(t *testing.T) {
	d := DefaultThresholds()
	if err := d.Validate(); err != nil {
		t.Fatalf("DefaultThresholds are invalid: %v", err)
	}
	if d.SlopeThreshold != 0.01 {
		t.Errorf("SlopeThreshold = %v, want 0.01", d.SlopeThreshold)
	}
	if d.ZScoreThreshold != 2.0 {
		t.Errorf("ZScoreThreshold = %v, want 2.0", d.ZScoreThreshold)
	}
}
