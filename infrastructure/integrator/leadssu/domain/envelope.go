package leadssudomain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const SuccessCode = 200

var (
	ErrEnvelopeError  = errors.New("leadssu: envelope reports an error")
	ErrEnvelopeCode   = errors.New("leadssu: unexpected envelope code")
	ErrEnvelopeNoData = errors.New("leadssu: envelope without data")
)

// Envelope é o invólucro comum de todas as respostas da API de webmaster
type Envelope struct {
	Error json.RawMessage `json:"error"`
	Code  Number          `json:"code"`
	Data  json.RawMessage `json:"data"`
	Count Number          `json:"count"`
}

func (e *Envelope) HasError() bool {
	return truthy(e.Error)
}

func (e *Envelope) HasData() bool {
	return truthy(e.Data)
}

// Validate só aceita envelopes sem erro, com code 200 e data presente.
// O code é comparado pelo valor numérico: 200, 200.0 e "200" são aceitos.
func (e *Envelope) Validate() error {
	if e.HasError() {
		return fmt.Errorf("%w: %s", ErrEnvelopeError, string(e.Error))
	}

	if e.Code.Float64() != SuccessCode {
		return fmt.Errorf("%w: %v", ErrEnvelopeCode, e.Code.Float64())
	}

	if !e.HasData() {
		return ErrEnvelopeNoData
	}

	return nil
}

// Records divide data em registros brutos. Data que não é array vira lista vazia.
func (e *Envelope) Records() []json.RawMessage {
	data := bytes.TrimSpace(e.Data)
	if len(data) == 0 || data[0] != '[' {
		return []json.RawMessage{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return []json.RawMessage{}
	}

	return records
}

func (e *Envelope) Total() int {
	return e.Count.Int()
}

func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}

	switch string(v) {
	case "null", "false", `""`:
		return false
	}

	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		return f != 0
	}

	return true
}
