package money

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"decimal comma", 99.9, "R$ 99,90"},
		{"sub one", 0.5, "R$ 0,50"},
		{"thousands separator", 1234.56, "R$ 1.234,56"},
		{"whole value", 150, "R$ 150,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBRL(tt.value); got != tt.want {
				t.Errorf("FormatBRL(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
