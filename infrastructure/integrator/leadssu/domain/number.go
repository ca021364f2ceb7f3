package leadssudomain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Number aceita tanto números quanto strings numéricas, que a API do leads.su
// devolve de forma inconsistente entre as actions. Valores que não são
// numéricos viram 0 com um aviso no log, sem invalidar o registro.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": string(b),
			"error": err.Error(),
		}).Warn("leadssu: invalid number, using 0")
		*n = 0
		return nil
	}

	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(math.Round(float64(n)))
}

func (n Number) Int64() int64 {
	return int64(math.Round(float64(n)))
}

// Text aceita strings, números e null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	*t = Text(b)
	return nil
}

func (t Text) String() string {
	return string(t)
}
