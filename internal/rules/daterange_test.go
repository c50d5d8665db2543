package rules

import (
	"errors"
	"testing"
	"time"
)

func TestNewDateRangeFromConfig_Validation(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		config  DateRangeConfig
		wantErr bool
	}{
		{name: "no bounds", config: DateRangeConfig{}, wantErr: true},
		{name: "start only", config: DateRangeConfig{Start: &start}, wantErr: false},
		{name: "end only", config: DateRangeConfig{End: &end}, wantErr: false},
		{name: "both bounds", config: DateRangeConfig{Start: &start, End: &end}, wantErr: false},
		{name: "inverted bounds", config: DateRangeConfig{Start: &end, End: &start}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRangeFromConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDateRangeFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDateRangeRule_Evaluate(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name      string
		config    DateRangeConfig
		createdAt time.Time
		want      bool
	}{
		{
			name:      "inside range",
			config:    DateRangeConfig{Start: &start, End: &end},
			createdAt: time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "before start",
			config:    DateRangeConfig{Start: &start, End: &end},
			createdAt: time.Date(2019, 12, 31, 23, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "after end",
			config:    DateRangeConfig{Start: &start, End: &end},
			createdAt: time.Date(2021, 1, 1, 0, 0, 1, 0, time.UTC),
			want:      true,
		},
		{
			name:      "exactly on start",
			config:    DateRangeConfig{Start: &start},
			createdAt: start,
			want:      false,
		},
		{
			name:      "start only never excludes the far future",
			config:    DateRangeConfig{Start: &start},
			createdAt: time.Date(2150, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "end only never excludes the distant past",
			config:    DateRangeConfig{End: &end},
			createdAt: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewDateRangeFromConfig(tt.config)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tw := textTweet("hello")
			tw.CreatedAt = tt.createdAt

			if got := rule.Evaluate(tw); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateRangeConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]interface{}
		wantErr bool
	}{
		{name: "no bounds", config: map[string]interface{}{}, wantErr: true},
		{name: "empty strings are unset", config: map[string]interface{}{"start": "", "end": ""}, wantErr: true},
		{name: "plain date start", config: map[string]interface{}{"start": "2020-01-01"}, wantErr: false},
		{name: "rfc3339 end", config: map[string]interface{}{"end": "2020-12-31T23:59:59Z"}, wantErr: false},
		{name: "garbage date", config: map[string]interface{}{"start": "yesterday"}, wantErr: true},
		{name: "wrong type", config: map[string]interface{}{"start": 20200101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateRangeConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateRangeConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDateRangeConfig_EndParsesFromItsOwnValue(t *testing.T) {
	cfg, err := ParseDateRangeConfig(map[string]interface{}{
		"start": "2020-01-01",
		"end":   "2020-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.End == nil {
		t.Fatal("expected end bound to be set")
	}
	want := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	if !cfg.End.Equal(want) {
		t.Errorf("end bound = %v, want %v", cfg.End, want)
	}
	if cfg.End.Equal(*cfg.Start) {
		t.Error("end bound must not mirror the start bound")
	}
}

func TestDateRangeRuleErrNoDateBounds(t *testing.T) {
	_, err := NewDateRangeFromConfig(DateRangeConfig{})
	if !errors.Is(err, ErrNoDateBounds) {
		t.Errorf("expected ErrNoDateBounds, got %v", err)
	}
}
