package ethrpc

// parity_set module plus the parity pubsub pair.

var paritySetMethods = []methodDef{
	{"parity_accept_non_reserved_peers", "parity_acceptNonReservedPeers", 1, noParams},
	{"parity_add_reserved_peer", "parity_addReservedPeer", 1, positional(req("enode"))},
	{"parity_dapps_list", "parity_dappsList", 1, noParams},
	{"parity_drop_non_reserved_peers", "parity_dropNonReservedPeers", 1, noParams},
	{"parity_execute_upgrade", "parity_executeUpgrade", 1, noParams},
	{"parity_hash_content", "parity_hashContent", 1, positional(req("uri"))},
	{"parity_remove_reserved_peer", "parity_removeReservedPeer", 1, positional(req("enode"))},
	{"parity_set_author", "parity_setAuthor", 1, positional(req("address"))},
	{"parity_set_chain", "parity_setChain", 1, positional(req("chain"))},
	{"parity_set_engine_signer", "parity_setEngineSigner", 1, positional(req("address"), req("password"))},
	{"parity_set_extra_data", "parity_setExtraData", 1, positional(req("data"))},
	{"parity_set_gas_ceil_target", "parity_setGasCeilTarget", 1, positional(qtyOpt("gas", "0x0"))},
	{"parity_set_gas_floor_target", "parity_setGasFloorTarget", 1, positional(qtyOpt("gas", "0x0"))},
	{"parity_set_max_transaction_gas", "parity_setMaxTransactionGas", 1, positional(qty("gas"))},
	{"parity_set_min_gas_price", "parity_setMinGasPrice", 1, positional(qty("gasPrice"))},
	{"parity_set_mode", "parity_setMode", 1, positional(req("mode"))},
	{"parity_set_transactions_limit", "parity_setTransactionsLimit", 1, positional(qty("limit"))},
	{"parity_upgrade_ready", "parity_upgradeReady", 1, noParams},

	// parity pubsub
	{"parity_subscribe", "parity_subscribe", 1, shapeParitySubscribe},
	{"parity_unsubscribe", "parity_unsubscribe", 1, positional(qty("subscriptionID"))},
}

// shapeParitySubscribe resolves any registered method by either of its names
// and shapes the remaining arguments with that method's own shaper, emitting
// [wireName, innerParams].
func shapeParitySubscribe(r *Registry, a arglist) ([]any, error) {
	name, err := a.string(0, "method")
	if err != nil {
		return nil, err
	}
	d, ok := r.Lookup(name)
	if !ok {
		return nil, a.errf("unknown RPC method %q", name)
	}
	inner, err := d.shape(r, arglist{method: d.ClientName, vals: a.vals[1:]})
	if err != nil {
		return nil, err
	}
	return []any{d.WireName, inner}, nil
}
