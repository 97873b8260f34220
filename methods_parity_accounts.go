package ethrpc

var parityAccountsMethods = []methodDef{
	{"parity_all_accounts_info", "parity_allAccountsInfo", 1, noParams},
	{"parity_change_password", "parity_changePassword", 1, positional(req("address"), req("oldPassword"), req("newPassword"))},
	{"parity_derive_address_hash", "parity_deriveAddressHash", 1, shapeDeriveAddressHash},
	{"parity_derive_address_index", "parity_deriveAddressIndex", 1, shapeDeriveAddressIndex},
	{"parity_export_account", "parity_exportAccount", 1, positional(req("address"), req("password"))},
	{"parity_get_dapp_addresses", "parity_getDappAddresses", 1, positional(req("dapp"))},
	{"parity_get_dapp_default_address", "parity_getDappDefaultAddress", 1, positional(req("dapp"))},
	{"parity_get_new_dapps_addresses", "parity_getNewDappsAddresses", 1, noParams},
	{"parity_get_new_dapps_default_address", "parity_getNewDappsDefaultAddress", 1, noParams},
	{"parity_import_geth_accounts", "parity_importGethAccounts", 1, variadicAddresses()},
	{"parity_kill_account", "parity_killAccount", 1, positional(req("address"), req("password"))},
	{"parity_list_geth_accounts", "parity_listGethAccounts", 1, noParams},
	{"parity_list_recent_dapps", "parity_listRecentDapps", 1, noParams},
	{"parity_new_account_from_phrase", "parity_newAccountFromPhrase", 1, positional(req("phrase"), req("password"))},
	{"parity_new_account_from_secret", "parity_newAccountFromSecret", 1, positional(req("secret"), req("password"))},
	{"parity_new_account_from_wallet", "parity_newAccountFromWallet", 1, positional(req("wallet"), req("password"))},
	{"parity_remove_address", "parity_removeAddress", 1, positional(req("address"))},
	{"parity_set_account_meta", "parity_setAccountMeta", 1, positional(req("address"), req("metadata"))},
	{"parity_set_account_name", "parity_setAccountName", 1, positional(req("address"), req("name"))},
	{"parity_set_dapp_addresses", "parity_setDappAddresses", 1, variadicAddresses("dapp")},
	{"parity_set_dapp_default_address", "parity_setDappDefaultAddress", 1, positional(req("dapp"), req("address"))},
	{"parity_set_new_dapps_addresses", "parity_setNewDappsAddresses", 1, variadicAddresses()},
	{"parity_set_new_dapps_default_address", "parity_setNewDappsDefaultAddress", 1, positional(req("address"))},
	{"parity_test_password", "parity_testPassword", 1, positional(req("address"), req("password"))},
}

func shapeDeriveAddressHash(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(5); err != nil {
		return nil, err
	}
	address, err := a.required(0, "address")
	if err != nil {
		return nil, err
	}
	password, err := a.required(1, "password")
	if err != nil {
		return nil, err
	}
	hash, err := a.required(2, "derivationHash")
	if err != nil {
		return nil, err
	}
	derivationType := any("hard")
	if a.present(3) {
		derivationType = a.at(3)
	}
	save := any(false)
	if a.present(4) {
		save = a.at(4)
	}
	derived := map[string]any{"hash": hash, "type": derivationType}
	return []any{address, password, derived, save}, nil
}

func shapeDeriveAddressIndex(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(4); err != nil {
		return nil, err
	}
	address, err := a.required(0, "address")
	if err != nil {
		return nil, err
	}
	password, err := a.required(1, "password")
	if err != nil {
		return nil, err
	}
	derivation, err := a.list(2, "derivation")
	if err != nil {
		return nil, err
	}
	save := any(false)
	if a.present(3) {
		save = a.at(3)
	}
	return []any{address, password, derivation, save}, nil
}
