package leadssuclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Params é a query string ordenada enviada para a API. A ordem de inserção é
// preservada e Set em uma chave existente mantém a posição original.
type Params struct {
	keys   []string
	values map[string]any
}

func NewParams() *Params {
	return &Params{
		keys:   make([]string, 0),
		values: make(map[string]any),
	}
}

func (p *Params) Set(key string, value any) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone devolve uma cópia rasa. Um Params nil gera um Params vazio.
func (p *Params) Clone() *Params {
	clone := NewParams()
	if p == nil {
		return clone
	}
	for _, key := range p.keys {
		clone.Set(key, p.values[key])
	}
	return clone
}

// Encode serializa na ordem de inserção. Listas viram array JSON.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	for i, key := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(formatValue(p.values[key])))
	}
	return sb.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		b, err := codec.Marshal(value)
		if err == nil {
			return string(b)
		}
	}

	return fmt.Sprint(value)
}
