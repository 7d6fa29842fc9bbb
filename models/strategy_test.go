package models

import "testing"

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Strategy
		wantErr bool
	}{
		{name: "sequential", value: "sequential", want: StrategySequential},
		{name: "empty defaults to sequential", value: "", want: StrategySequential},
		{name: "threads", value: "threads", want: StrategyThreads},
		{name: "threading alias", value: "threading", want: StrategyThreads},
		{name: "processes", value: "processes", want: StrategyProcesses},
		{name: "multiprocessing alias", value: "multiprocessing", want: StrategyProcesses},
		{name: "mixed case", value: "Threads", want: StrategyThreads},
		{name: "surrounding whitespace", value: " processes ", want: StrategyProcesses},
		{name: "unknown strategy", value: "fibers", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{StrategySequential, "sequential"},
		{StrategyThreads, "threads"},
		{StrategyProcesses, "processes"},
	}

	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", tt.strategy, got, tt.want)
		}
	}
}
