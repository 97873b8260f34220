// Package ethrpc is a client-side binding for the Ethereum JSON-RPC API.
//
// Every method of the web3, net, eth, personal, parity, signer, trace,
// admin, debug, miner, txpool and shh namespaces is registered under two
// names: a snake_case client name (eth_get_balance) and the camelCase name
// sent on the wire (eth_getBalance). Either resolves the same descriptor.
// Arguments are validated and formatted locally, so malformed calls fail
// before anything reaches the node, and the response body is handed back as
// raw JSON for the caller to interpret.
//
//	client := ethrpc.NewClient("localhost:8545")
//	defer client.Close()
//	raw, err := client.Invoke(ctx, "eth_get_balance", addr, "latest")
//
// AsyncClient runs many calls concurrently with a bounded number in flight.
package ethrpc
