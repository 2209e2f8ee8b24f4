package storage

import (
	"testing"

	"expenses/internal/core"
)

func TestFilterWhere(t *testing.T) {
	start := core.NewDate(2024, 1, 1)
	end := core.NewDate(2024, 1, 31)

	tests := []struct {
		name     string
		filter   Filter
		wantSQL  string
		wantArgs int
		firstArg any
	}{
		{
			name:    "empty filter is a full scan",
			filter:  Filter{},
			wantSQL: "",
		},
		{
			name:     "start only",
			filter:   Filter{Start: start},
			wantSQL:  " WHERE date >= ?",
			wantArgs: 1,
			firstArg: "2024-01-01",
		},
		{
			name:     "end only",
			filter:   Filter{End: end},
			wantSQL:  " WHERE date <= ?",
			wantArgs: 1,
			firstArg: "2024-01-31",
		},
		{
			name:     "category only",
			filter:   Filter{Category: "Food"},
			wantSQL:  " WHERE category = ?",
			wantArgs: 1,
			firstArg: "Food",
		},
		{
			name:     "all three",
			filter:   Filter{Start: start, End: end, Category: "Rent"},
			wantSQL:  " WHERE date >= ? AND date <= ? AND category = ?",
			wantArgs: 3,
			firstArg: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.where()
			if sql != tt.wantSQL {
				t.Errorf("where() sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Fatalf("where() args = %d, want %d", len(args), tt.wantArgs)
			}
			if tt.wantArgs > 0 && args[0] != tt.firstArg {
				t.Errorf("first arg = %v, want %v", args[0], tt.firstArg)
			}
		})
	}
}
