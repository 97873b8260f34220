package ethrpc

// The parity module proper. The parity_accounts and parity_set modules live
// in their own files.

var parityMethods = []methodDef{
	{"parity_accounts_info", "parity_accountsInfo", 1, noParams},
	{"parity_chain", "parity_chain", 1, noParams},
	{"parity_chain_status", "parity_chainStatus", 1, noParams},
	{"parity_change_vault", "parity_changeVault", 1, positional(req("address"), req("vault"))},
	{"parity_change_vault_password", "parity_changeVaultPassword", 1, positional(req("vault"), req("password"))},
	{"parity_check_request", "parity_checkRequest", 1, positional(qty("requestID"))},
	{"parity_cid_v0", "parity_cidV0", 1, positional(req("data"))},
	{"parity_close_vault", "parity_closeVault", 1, positional(req("vault"))},
	{"parity_compose_transaction", "parity_composeTransaction", 1, shapeTransactionObject},
	{"parity_consensus_capability", "parity_consensusCapability", 1, noParams},
	{"parity_dapps_url", "parity_dappsUrl", 1, noParams},
	{"parity_decrypt_message", "parity_decryptMessage", 1, positional(req("address"), req("message"))},
	{"parity_default_account", "parity_defaultAccount", 1, noParams},
	{"parity_default_extra_data", "parity_defaultExtraData", 1, noParams},
	{"parity_dev_logs", "parity_devLogs", 1, noParams},
	{"parity_dev_logs_levels", "parity_devLogsLevels", 1, noParams},
	{"parity_encrypt_message", "parity_encryptMessage", 1, positional(req("hash"), req("message"))},
	{"parity_enode", "parity_enode", 1, noParams},
	{"parity_extra_data", "parity_extraData", 1, noParams},
	{"parity_future_transactions", "parity_futureTransactions", 1, noParams},
	{"parity_gas_ceil_target", "parity_gasCeilTarget", 1, noParams},
	{"parity_gas_floor_target", "parity_gasFloorTarget", 1, noParams},
	{"parity_gas_price_histogram", "parity_gasPriceHistogram", 1, noParams},
	{"parity_generate_secret_phrase", "parity_generateSecretPhrase", 1, noParams},
	{"parity_get_block_header_by_number", "parity_getBlockHeaderByNumber", 1, positional(blk("block"))},
	{"parity_get_vault_meta", "parity_getVaultMeta", 1, positional(req("vault"))},
	{"parity_hardware_accounts_info", "parity_hardwareAccountsInfo", 1, noParams},
	{"parity_list_accounts", "parity_listAccounts", 1, shapeListAccounts},
	{"parity_list_opened_vaults", "parity_listOpenedVaults", 1, noParams},
	{"parity_list_storage_keys", "parity_listStorageKeys", 1, shapeListStorageKeys},
	{"parity_list_vaults", "parity_listVaults", 1, noParams},
	{"parity_local_transactions", "parity_localTransactions", 1, noParams},
	{"parity_min_gas_price", "parity_minGasPrice", 1, noParams},
	{"parity_mode", "parity_mode", 1, noParams},
	{"parity_new_vault", "parity_newVault", 1, positional(req("vault"), req("password"))},
	{"parity_net_chain", "parity_netChain", 1, noParams},
	{"parity_net_peers", "parity_netPeers", 1, noParams},
	{"parity_net_port", "parity_netPort", 1, noParams},
	{"parity_next_nonce", "parity_nextNonce", 1, positional(req("address"))},
	{"parity_node_kind", "parity_nodeKind", 1, noParams},
	{"parity_node_name", "parity_nodeName", 1, noParams},
	{"parity_pending_transactions", "parity_pendingTransactions", 1, noParams},
	{"parity_pending_transactions_stats", "parity_pendingTransactionsStats", 1, noParams},
	{"parity_phrase_to_address", "parity_phraseToAddress", 1, positional(req("phrase"))},
	{"parity_open_vault", "parity_openVault", 1, positional(req("vault"), req("password"))},
	{"parity_post_sign", "parity_postSign", 1, positional(req("address"), req("message"))},
	{"parity_post_transaction", "parity_postTransaction", 1, shapeTransactionObject},
	{"parity_registry_address", "parity_registryAddress", 1, noParams},
	{"parity_releases_info", "parity_releasesInfo", 1, noParams},
	{"parity_remove_transaction", "parity_removeTransaction", 1, positional(req("hash"))},
	{"parity_rpc_settings", "parity_rpcSettings", 1, noParams},
	{"parity_set_vault_meta", "parity_setVaultMeta", 1, positional(req("vault"), req("metadata"))},
	{"parity_sign_message", "parity_signMessage", 1, positional(req("address"), req("password"), req("hash"))},
	{"parity_transactions_limit", "parity_transactionsLimit", 1, noParams},
	{"parity_unsigned_transactions_count", "parity_unsignedTransactionsCount", 1, noParams},
	{"parity_version_info", "parity_versionInfo", 1, noParams},
	{"parity_ws_url", "parity_wsUrl", 1, noParams},
}

// shapeTransactionObject wraps the full eight-field transaction object
// (including nonce and condition) for the parity compose/post methods.
func shapeTransactionObject(_ *Registry, a arglist) ([]any, error) {
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

// shapeListAccounts: the offset address slot is always sent (null when no
// offset), while the block selector is appended only when given.
func shapeListAccounts(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(3); err != nil {
		return nil, err
	}
	q, err := a.quantity(0, "quantity")
	if err != nil {
		return nil, err
	}
	params := []any{q, a.at(1)}
	if a.present(2) {
		b, err := a.block(2, "")
		if err != nil {
			return nil, err
		}
		params = append(params, b)
	}
	return params, nil
}

// shapeListStorageKeys mirrors shapeListAccounts with a leading account
// address and a nullable offset storage key.
func shapeListStorageKeys(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(4); err != nil {
		return nil, err
	}
	address, err := a.required(0, "address")
	if err != nil {
		return nil, err
	}
	q, err := a.quantity(1, "quantity")
	if err != nil {
		return nil, err
	}
	params := []any{address, q, a.at(2)}
	if a.present(3) {
		b, err := a.block(3, "")
		if err != nil {
			return nil, err
		}
		params = append(params, b)
	}
	return params, nil
}
