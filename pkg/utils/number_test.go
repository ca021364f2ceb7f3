package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  float64
		total float64
		want  float64
	}{
		{name: "denominador zero", part: 10, total: 0, want: 0},
		{name: "numerador zero", part: 0, total: 10, want: 0},
		{name: "um terço", part: 1, total: 3, want: 33.33},
		{name: "dois terços", part: 2, total: 3, want: 66.67},
		{name: "cem por cento", part: 7, total: 7, want: 100},
		{name: "acima de cem", part: 15, total: 10, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.part, tt.total))
		})
	}
}

func TestAddWithTwoDecimalPlace(t *testing.T) {
	total := 0.0
	for _, v := range []float64{10.005, 10.005} {
		total = AddWithTwoDecimalPlace(total, v)
	}

	assert.Equal(t, 20.02, total)
	assert.Equal(t, 20.01, RoundWithTwoDecimalPlace(10.005+10.005))
	assert.NotEqual(t, RoundWithTwoDecimalPlace(10.005+10.005), total)
}

func TestAddWithTwoDecimalPlace_RoundsEveryStep(t *testing.T) {
	assert.Equal(t, 0.3, AddWithTwoDecimalPlace(0.1, 0.2))
	assert.Equal(t, 1.01, AddWithTwoDecimalPlace(1, 0.005))
	assert.Equal(t, 0.0, AddWithTwoDecimalPlace(0, 0))
}
