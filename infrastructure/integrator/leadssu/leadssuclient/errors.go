package leadssuclient

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed é o sinal único de falha de uma requisição, qualquer que seja a causa
	ErrRequestFailed      = errors.New("leadssu: request failed")
	ErrPaginatorExhausted = errors.New("leadssu: paginator already consumed")
)

type FailureKind string

const (
	TransportFailure FailureKind = "transport"
	EnvelopeFailure  FailureKind = "envelope"
)

type RequestError struct {
	Kind   FailureKind
	Action string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("leadssu: %s failure on %s: %v", e.Kind, e.Action, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func IsTransportFailure(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == TransportFailure
}

func IsEnvelopeFailure(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == EnvelopeFailure
}
