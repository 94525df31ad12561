package rpc

import (
	"encoding/json"
	"fmt"
)

// TransportError reports a failed exchange with the node: network errors,
// unexpected HTTP statuses and undecodable payloads. The underlying cause
// is available through Unwrap.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc transport failure for %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RPCError is an error object returned by the node inside a well-formed
// JSON-RPC response.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
