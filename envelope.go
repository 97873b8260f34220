package ethrpc

// Request is a JSON-RPC 2.0 request envelope. A fresh value is built for
// every call and never reused.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

func newRequest(method string, params []any, id int) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	}
}
