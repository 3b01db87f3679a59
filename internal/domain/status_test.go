package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus_TruthTable(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  Status
	}{
		{"both absent", nil, nil, StatusNotStarted},
		{"start only", &d, nil, StatusInProgress},
		{"end only", nil, &d, StatusDone},
		{"both set", &d, &d, StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.start, tt.end))
		})
	}
}
