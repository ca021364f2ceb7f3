package leadssuclient

import (
	"context"
	"encoding/json"
	"iter"

	"github.com/sirupsen/logrus"
)

const DefaultPageSize = 500

// Paginator percorre uma action paginada por offset/limit. A primeira página é
// sempre buscada, mesmo quando count é zero, e a iteração termina quando o
// offset alcança o count do último envelope válido.
type Paginator struct {
	requester Requester
	action    string
	params    *Params
	pageSize  int

	offset   int
	total    int
	pages    int
	done     bool
	consumed bool
	err      error
}

func NewPaginator(requester Requester, action string, params *Params, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Paginator{
		requester: requester,
		action:    action,
		params:    params.Clone(),
		pageSize:  pageSize,
	}
}

// Next busca a próxima página. Depois de uma falha o mesmo erro é devolvido
// sempre, e depois da última página devolve ErrPaginatorExhausted.
func (p *Paginator) Next(ctx context.Context) ([]json.RawMessage, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.done {
		return nil, ErrPaginatorExhausted
	}

	query := p.params.Clone()
	query.Set("offset", p.offset)
	query.Set("limit", p.pageSize)

	envelope, err := p.requester.Request(ctx, p.action, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"action": p.action,
			"offset": p.offset,
			"pages":  p.pages,
		}).Warn("leadssu: pagination aborted")

		p.err = err
		p.done = true
		return nil, err
	}

	p.pages++
	p.total = envelope.Total()
	p.offset += p.pageSize
	if p.offset >= p.total {
		p.done = true
	}

	return envelope.Records(), nil
}

func (p *Paginator) HasNext() bool {
	return !p.done
}

func (p *Paginator) Offset() int {
	return p.offset
}

// Total é o count informado pelo último envelope válido
func (p *Paginator) Total() int {
	return p.total
}

func (p *Paginator) Pages() int {
	return p.pages
}

func (p *Paginator) Err() error {
	return p.err
}

// Records expõe os registros como uma sequência preguiçosa. A sequência só
// pode ser percorrida uma vez.
func (p *Paginator) Records(ctx context.Context) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		if p.consumed {
			yield(nil, ErrPaginatorExhausted)
			return
		}
		p.consumed = true

		for p.HasNext() {
			page, err := p.Next(ctx)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, record := range page {
				if !yield(record, nil) {
					return
				}
			}
		}
	}
}

// Collect materializa a sequência aplicando normalize em cada registro.
// Qualquer erro descarta o que já foi coletado.
func Collect[T any](seq iter.Seq2[json.RawMessage, error], normalize func(json.RawMessage) (T, error)) ([]T, error) {
	result := make([]T, 0)
	for raw, err := range seq {
		if err != nil {
			return nil, err
		}

		item, err := normalize(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, nil
}
