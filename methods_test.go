package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// captureTransport records the last request instead of sending it.
type captureTransport struct {
	last *Request
	resp json.RawMessage
	err  error
}

func (t *captureTransport) Send(_ context.Context, req *Request) (json.RawMessage, error) {
	t.last = req
	if t.resp == nil && t.err == nil {
		return json.RawMessage(`{"jsonrpc":"2.0","result":null,"id":1}`), nil
	}
	return t.resp, t.err
}

func newTestClient(t *testing.T) (*Client, *captureTransport) {
	t.Helper()
	tr := &captureTransport{}
	return NewClient("", WithTransport(tr)), tr
}

// paramsJSON marshals the captured params for comparison; map keys come out
// sorted, so the expected strings are deterministic.
func paramsJSON(t *testing.T, req *Request) string {
	t.Helper()
	if req == nil {
		t.Fatal("no request was sent")
	}
	data, err := json.Marshal(req.Params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	return string(data)
}

func TestShaping(t *testing.T) {
	addr := "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae"

	tests := []struct {
		name       string
		method     string
		args       []any
		wantMethod string
		wantParams string
	}{
		{
			"balance with default block",
			"eth_get_balance", []any{addr},
			"eth_getBalance", `["` + addr + `","latest"]`,
		},
		{
			"balance with numeric block",
			"eth_get_balance", []any{addr, 500}, "eth_getBalance", `["` + addr + `","0x1f4"]`,
		},
		{
			"wire name addresses the same method",
			"eth_getBalance", []any{addr}, "eth_getBalance", `["` + addr + `","latest"]`,
		},
		{
			"no params",
			"eth_block_number", nil, "eth_blockNumber", `[]`,
		},
		{
			"get block by number with flag",
			"eth_get_block_by_number", []any{1000, true}, "eth_getBlockByNumber", `["0x3e8",true]`,
		},
		{
			"call with block",
			"eth_call", []any{addr, nil, nil, nil, nil, nil, "latest"},
			"eth_call", `[{"from":"` + addr + `"},"latest"]`,
		},
		{
			"estimate gas with empty object",
			"eth_estimate_gas", nil, "eth_estimateGas", `[{}]`,
		},
		{
			"send transaction",
			"eth_send_transaction", []any{addr, "0xto", 30400, nil, 2441406250, "0xdata"},
			"eth_sendTransaction", `[{"data":"0xdata","from":"` + addr + `","gas":"0x76c0","to":"0xto","value":"0x9184e72a"}]`,
		},
		{
			"logs filter",
			"eth_get_logs", []any{5, "latest", addr},
			"eth_getLogs", `[{"address":"` + addr + `","fromBlock":"0x5","toBlock":"latest"}]`,
		},
		{
			"subscribe new heads",
			"eth_subscribe", []any{"newHeads"}, "eth_subscribe", `["newHeads",{}]`,
		},
		{
			"subscribe logs",
			"eth_subscribe", []any{"logs", 5}, "eth_subscribe", `["logs",{"fromBlock":"0x5"}]`,
		},
		{
			"submit work pads nonce to eight digits",
			"eth_submit_work", []any{42, "0xpow", "0xmix"},
			"eth_submitWork", `["0x0000002a","0xpow","0xmix"]`,
		},
		{
			"submit hashrate pads to sixty-four digits",
			"eth_submit_hashrate", []any{1, "0xid"},
			"eth_submitHashrate", `["0x0000000000000000000000000000000000000000000000000000000000000001","0xid"]`,
		},
		{
			"unlock account without duration sends null",
			"personal_unlock_account", []any{addr, "hunter2"},
			"personal_unlockAccount", `["` + addr + `","hunter2",null]`,
		},
		{
			"unlock account with duration",
			"personal_unlock_account", []any{addr, "hunter2", 600},
			"personal_unlockAccount", `["` + addr + `","hunter2","0x258"]`,
		},
		{
			"lock account",
			"personal_lock_account", []any{addr}, "personal_lockAccount", `["` + addr + `"]`,
		},
		{
			"list accounts with nullable offset",
			"parity_list_accounts", []any{20},
			"parity_listAccounts", `["0x14",null]`,
		},
		{
			"list accounts with block appended",
			"parity_list_accounts", []any{20, addr, "latest"},
			"parity_listAccounts", `["0x14","` + addr + `","latest"]`,
		},
		{
			"list storage keys",
			"parity_list_storage_keys", []any{addr, 5},
			"parity_listStorageKeys", `["` + addr + `","0x5",null]`,
		},
		{
			"variadic geth accounts",
			"parity_import_geth_accounts", []any{"0xa1", "0xa2"},
			"parity_importGethAccounts", `[["0xa1","0xa2"]]`,
		},
		{
			"variadic with no trailing addresses",
			"parity_set_new_dapps_addresses", nil,
			"parity_setNewDappsAddresses", `[[]]`,
		},
		{
			"variadic dapp addresses",
			"parity_set_dapp_addresses", []any{"web", "0xa1"},
			"parity_setDappAddresses", `["web",["0xa1"]]`,
		},
		{
			"parity subscribe resolves inner method",
			"parity_subscribe", []any{"eth_get_balance", addr},
			"parity_subscribe", `["eth_getBalance",["` + addr + `","latest"]]`,
		},
		{
			"trace raw transaction keeps odd wire name",
			"trace_raw_transaction", []any{"0xdata", []string{"trace"}},
			"trace_RawTransaction", `["0xdata",["trace"]]`,
		},
		{
			"debug trace block appends empty config",
			"debug_trace_block", nil,
			"debug_traceBlock", `["latest",{}]`,
		},
		{
			"debug trace transaction with options",
			"debug_trace_transaction", []any{"0xhash", map[string]any{"disableStack": true}},
			"debug_traceTransaction", `["0xhash",{"disableStack":true}]`,
		},
		{
			"backtrace joins file and line",
			"debug_backtrace_at", []any{"server.go", 443},
			"debug_backtraceAt", `["server.go:443"]`,
		},
		{
			"admin start rpc defaults",
			"admin_start_rpc", nil,
			"admin_startRPC", `["localhost","0x2161","","eth,net,web3"]`,
		},
		{
			"signer confirm request",
			"signer_confirm_request", []any{7, nil, nil, nil, "hunter2"},
			"signer_confirmRequest", `["0x7",{},"hunter2"]`,
		},
		{
			"shh message filter carries null decryptWith",
			"shh_new_message_filter", []any{[]string{"0xt"}},
			"shh_newMessageFilter", `[{"decryptWith":null,"topics":["0xt"]}]`,
		},
		{
			"derive address hash defaults",
			"parity_derive_address_hash", []any{addr, "pw", "0xhash"},
			"parity_deriveAddressHash", `["` + addr + `","pw",{"hash":"0xhash","type":"hard"},false]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, tr := newTestClient(t)
			if _, err := client.Invoke(context.Background(), tt.method, tt.args...); err != nil {
				t.Fatalf("Invoke(%s) error: %v", tt.method, err)
			}
			if tr.last.Method != tt.wantMethod {
				t.Errorf("wire method = %s, want %s", tr.last.Method, tt.wantMethod)
			}
			if got := paramsJSON(t, tr.last); got != tt.wantParams {
				t.Errorf("params = %s, want %s", got, tt.wantParams)
			}
		})
	}
}

func TestShapingErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []any
	}{
		{"call without block", "eth_call", []any{"0xfrom"}},
		{"trace call without block", "trace_call", []any{"0xfrom"}},
		{"unknown method", "eth_not_a_method", nil},
		{"no-param method given args", "eth_block_number", []any{1}},
		{"too many args", "eth_get_balance", []any{"0xa", "latest", "extra"}},
		{"subscribe bad kind", "eth_subscribe", []any{"newBlocks"}},
		{"send transaction without from", "eth_send_transaction", nil},
		{"personal send without password", "personal_send_transaction", []any{"0xfrom"}},
		{"signer confirm without password", "signer_confirm_request", []any{7}},
		{"signer token variant without token", "signer_confirm_request_with_token", []any{7}},
		{"negative quantity", "eth_get_filter_changes", []any{-3}},
		{"subscribe inner failure", "parity_subscribe", []any{"eth_call", "0xfrom"}},
		{"subscribe unknown inner", "parity_subscribe", []any{"bogus_method"}},
		{"unlock without password", "personal_unlock_account", []any{"0xaddr"}},
		{"shh post without payload", "shh_post", []any{[]string{"0xt"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, tr := newTestClient(t)
			_, err := client.Invoke(context.Background(), tt.method, tt.args...)
			if err == nil {
				t.Fatalf("Invoke(%s) should fail", tt.method)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error type = %T (%v), want *ArgumentError", err, err)
			}
			if tr.last != nil {
				t.Error("transport was touched despite the argument error")
			}
		})
	}
}
