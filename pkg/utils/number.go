package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage calcula part/total em porcentagem com duas casas decimais.
// Denominador zero resulta em 0.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(part/total*10000) / 100
}

// AddWithTwoDecimalPlace soma value ao total acumulado e arredonda o resultado
// para duas casas em aritmética decimal. Usada em somatórios onde cada passo
// precisa ser arredondado, não apenas o total final.
func AddWithTwoDecimalPlace(total, value float64) float64 {
	sum, _ := decimal.NewFromFloat(total).
		Add(decimal.NewFromFloat(value)).
		Round(2).
		Float64()

	return sum
}
