package ethrpc

var personalMethods = []methodDef{
	{"personal_ec_recover", "personal_ecRecover", 1, positional(req("message"), req("signature"))},
	{"personal_import_raw_key", "personal_importRawKey", 1, positional(req("privateKey"), req("password"))},
	{"personal_list_accounts", "personal_listAccounts", 1, noParams},
	{"personal_lock_account", "personal_lockAccount", 1, positional(req("address"))},
	{"personal_new_account", "personal_newAccount", 1, positional(req("password"))},
	{"personal_send_transaction", "personal_sendTransaction", 1, shapePersonalSendTransaction},
	{"personal_sign", "personal_sign", 1, positional(req("message"), req("address"), req("password"))},
	{"personal_unlock_account", "personal_unlockAccount", 1, shapeUnlockAccount},
}

func shapePersonalSendTransaction(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(9); err != nil {
		return nil, err
	}
	if _, err := a.required(0, "from"); err != nil {
		return nil, err
	}
	password, err := a.required(8, "password")
	if err != nil {
		return nil, err
	}
	obj, err := a.transaction(true, true)
	if err != nil {
		return nil, err
	}
	return []any{obj, password}, nil
}

// shapeUnlockAccount always sends three positional params: the duration slot
// is part of the wire contract and goes out as null when no duration is
// given, never omitted.
func shapeUnlockAccount(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(3); err != nil {
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
	params := []any{address, password}
	if a.present(2) {
		d, err := a.quantity(2, "duration")
		if err != nil {
			return nil, err
		}
		params = append(params, d)
	} else {
		params = append(params, nil)
	}
	return params, nil
}
