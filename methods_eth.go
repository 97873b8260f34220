package ethrpc

import "fmt"

var ethMethods = []methodDef{
	{"eth_accounts", "eth_accounts", 1, noParams},
	{"eth_block_number", "eth_blockNumber", 83, noParams},
	{"eth_call", "eth_call", 1, shapeTransactionCall},
	{"eth_coinbase", "eth_coinbase", 64, noParams},
	{"eth_compile_lll", "eth_compileLLL", 1, positional(req("code"))},
	{"eth_compile_serpent", "eth_compileSerpent", 1, positional(req("code"))},
	{"eth_compile_solidity", "eth_compileSolidity", 1, positional(req("code"))},
	{"eth_estimate_gas", "eth_estimateGas", 1, shapeEstimateGas},
	{"eth_gas_price", "eth_gasPrice", 73, noParams},
	{"eth_get_balance", "eth_getBalance", 1, positional(req("address"), blk("block"))},
	{"eth_get_block_by_hash", "eth_getBlockByHash", 1, positional(req("hash"), opt("fullTransactions", false))},
	{"eth_get_block_by_number", "eth_getBlockByNumber", 1, positional(blk("block"), opt("fullTransactions", false))},
	{"eth_get_block_transaction_count_by_hash", "eth_getBlockTransactionCountByHash", 1, positional(req("hash"))},
	{"eth_get_block_transaction_count_by_number", "eth_getBlockTransactionCountByNumber", 1, positional(blk("block"))},
	{"eth_get_code", "eth_getCode", 1, positional(req("address"), blk("block"))},
	{"eth_get_compilers", "eth_getCompilers", 1, noParams},
	{"eth_get_filter_changes", "eth_getFilterChanges", 73, positional(qty("filterID"))},
	{"eth_get_filter_logs", "eth_getFilterLogs", 73, positional(qty("filterID"))},
	{"eth_get_logs", "eth_getLogs", 73, shapeFilterObject},
	{"eth_get_storage_at", "eth_getStorageAt", 1, positional(req("address"), qty("position"), blk("block"))},
	{"eth_get_transaction_by_block_hash_and_index", "eth_getTransactionByBlockHashAndIndex", 1, positional(req("hash"), qtyOpt("index", "0x0"))},
	{"eth_get_transaction_by_block_number_and_index", "eth_getTransactionByBlockNumberAndIndex", 1, positional(blk("block"), qtyOpt("index", "0x0"))},
	{"eth_get_transaction_by_hash", "eth_getTransactionByHash", 1, positional(req("hash"))},
	{"eth_get_transaction_count", "eth_getTransactionCount", 1, positional(req("address"), blk("block"))},
	{"eth_get_transaction_receipt", "eth_getTransactionReceipt", 1, positional(req("hash"))},
	{"eth_get_uncle_by_block_hash_and_index", "eth_getUncleByBlockHashAndIndex", 1, positional(req("hash"), qtyOpt("index", "0x0"))},
	{"eth_get_uncle_by_block_number_and_index", "eth_getUncleByBlockNumberAndIndex", 1, positional(blk("block"), qtyOpt("index", "0x0"))},
	{"eth_get_uncle_count_by_block_hash", "eth_getUncleCountByBlockHash", 1, positional(req("hash"))},
	{"eth_get_uncle_count_by_block_number", "eth_getUncleCountByBlockNumber", 1, positional(blk("block"))},
	{"eth_get_work", "eth_getWork", 73, noParams},
	{"eth_hashrate", "eth_hashrate", 71, noParams},
	{"eth_mining", "eth_mining", 71, noParams},
	{"eth_new_block_filter", "eth_newBlockFilter", 73, noParams},
	{"eth_new_filter", "eth_newFilter", 73, shapeFilterObject},
	{"eth_new_pending_transaction_filter", "eth_newPendingTransactionFilter", 73, noParams},
	{"eth_protocol_version", "eth_protocolVersion", 67, noParams},
	{"eth_send_raw_transaction", "eth_sendRawTransaction", 1, positional(req("data"))},
	{"eth_send_transaction", "eth_sendTransaction", 1, shapeSendTransaction},
	{"eth_sign", "eth_sign", 1, positional(req("address"), req("message"))},
	{"eth_sign_transaction", "eth_signTransaction", 1, shapeSignTransaction},
	{"eth_submit_hashrate", "eth_submitHashrate", 73, shapeSubmitHashrate},
	{"eth_submit_work", "eth_submitWork", 73, shapeSubmitWork},
	{"eth_syncing", "eth_syncing", 1, noParams},
	{"eth_uninstall_filter", "eth_uninstallFilter", 73, positional(qty("filterID"))},

	// eth pubsub
	{"eth_subscribe", "eth_subscribe", 1, shapeSubscribe},
	{"eth_unsubscribe", "eth_unsubscribe", 1, positional(qty("subscriptionID"))},
}

// shapeTransactionCall builds [txObject, block] for the read-only execution
// methods (eth_call, trace_call). The block selector is mandatory here,
// unlike the query methods that default to "latest".
func shapeTransactionCall(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(7); err != nil {
		return nil, err
	}
	if !a.present(6) {
		return nil, a.errf("block parameter must be provided")
	}
	obj, err := a.transaction(false, false)
	if err != nil {
		return nil, err
	}
	b, err := a.block(6, "")
	if err != nil {
		return nil, err
	}
	return []any{obj, b}, nil
}

func shapeEstimateGas(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(6); err != nil {
		return nil, err
	}
	obj, err := a.transaction(false, false)
	if err != nil {
		return nil, err
	}
	return []any{obj}, nil
}

func shapeSendTransaction(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(7); err != nil {
		return nil, err
	}
	if _, err := a.required(0, "from"); err != nil {
		return nil, err
	}
	obj, err := a.transaction(true, false)
	if err != nil {
		return nil, err
	}
	return []any{obj}, nil
}

func shapeSignTransaction(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(8); err != nil {
		return nil, err
	}
	if _, err := a.required(0, "from"); err != nil {
		return nil, err
	}
	obj, err := a.transaction(true, true)
	if err != nil {
		return nil, err
	}
	return []any{obj}, nil
}

// shapeFilterObject wraps a log filter (fromBlock, toBlock, address, topics)
// for eth_getLogs, eth_newFilter and trace_filter.
func shapeFilterObject(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(4); err != nil {
		return nil, err
	}
	obj, err := FormatFilter(a.at(0), a.at(1), a.at(2), a.at(3))
	if err != nil {
		return nil, a.wrap(err)
	}
	return []any{obj}, nil
}

func shapeSubmitHashrate(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(2); err != nil {
		return nil, err
	}
	rate, err := a.required(0, "hashrate")
	if err != nil {
		return nil, err
	}
	clientID, err := a.required(1, "clientID")
	if err != nil {
		return nil, err
	}
	h, err := FormatHashrate(rate)
	if err != nil {
		return nil, a.errf("hashrate: %s", reasonOf(err))
	}
	return []any{h, clientID}, nil
}

// shapeSubmitWork renders the nonce zero-padded to 8 hex digits, the width
// eth_submitWork requires.
func shapeSubmitWork(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(3); err != nil {
		return nil, err
	}
	nonce, err := a.required(0, "nonce")
	if err != nil {
		return nil, err
	}
	powHash, err := a.required(1, "powHash")
	if err != nil {
		return nil, err
	}
	mixDigest, err := a.required(2, "mixDigest")
	if err != nil {
		return nil, err
	}
	n, err := quantityValue(nonce)
	if err != nil {
		return nil, a.errf("nonce: %s", err)
	}
	if n.Sign() < 0 {
		return nil, a.errf("nonce must not be negative, got %s", n)
	}
	return []any{fmt.Sprintf("0x%08x", n), powHash, mixDigest}, nil
}

// shapeSubscribe handles the two eth_subscribe kinds: "logs" carries a
// filter object built from the remaining arguments, "newHeads" an empty one.
func shapeSubscribe(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(5); err != nil {
		return nil, err
	}
	kind, err := a.string(0, "subscription kind")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "logs":
		obj, err := FormatFilter(a.at(1), a.at(2), a.at(3), a.at(4))
		if err != nil {
			return nil, a.wrap(err)
		}
		return []any{"logs", obj}, nil
	case "newHeads":
		return []any{"newHeads", map[string]any{}}, nil
	default:
		return nil, a.errf("unexpected subscription kind %q", kind)
	}
}
