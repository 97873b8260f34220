package ethrpc

var shhMethods = []methodDef{
	{"shh_add_private_key", "shh_addPrivateKey", 1, positional(req("privateKey"))},
	{"shh_add_sym_key", "shh_addSymKey", 1, positional(req("symKey"))},
	{"shh_add_to_group", "shh_addToGroup", 73, positional(req("address"))},
	{"shh_delete_key", "shh_deleteKey", 1, positional(req("keyID"))},
	{"shh_delete_message_filter", "shh_deleteMessageFilter", 1, positional(req("filterID"))},
	{"shh_get_filter_changes", "shh_getFilterChanges", 73, positional(qty("filterID"))},
	{"shh_get_filter_messages", "shh_getFilterMessages", 1, positional(req("filterID"))},
	{"shh_get_messages", "shh_getMessages", 73, positional(qty("filterID"))},
	{"shh_get_private_key", "shh_getPrivateKey", 1, positional(req("keyID"))},
	{"shh_get_public_key", "shh_getPublicKey", 1, positional(req("keyID"))},
	{"shh_get_sym_key", "shh_getSymKey", 1, positional(req("keyID"))},
	{"shh_has_identity", "shh_hasIdentity", 73, positional(req("address"))},
	{"shh_info", "shh_info", 1, noParams},
	{"shh_new_filter", "shh_newFilter", 73, shapeShhNewFilter},
	{"shh_new_group", "shh_newGroup", 73, noParams},
	{"shh_new_identity", "shh_newIdentity", 73, noParams},
	{"shh_new_key_pair", "shh_newKeyPair", 1, noParams},
	{"shh_new_message_filter", "shh_newMessageFilter", 1, shapeShhMessageFilter},
	{"shh_new_sym_key", "shh_newSymKey", 1, noParams},
	{"shh_post", "shh_post", 73, shapeShhPost},
	{"shh_subscribe", "shh_subscribe", 1, shapeShhMessageFilter},
	{"shh_uninstall_filter", "shh_uninstallFilter", 73, positional(qty("filterID"))},
	{"shh_unsubscribe", "shh_unsubscribe", 1, positional(qty("subscriptionID"))},
	{"shh_version", "shh_version", 67, noParams},
}

func shapeShhNewFilter(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(2); err != nil {
		return nil, err
	}
	topics, err := a.list(0, "topics")
	if err != nil {
		return nil, err
	}
	obj := map[string]any{"topics": topics}
	if a.present(1) {
		obj["to"] = a.at(1)
	}
	return []any{obj}, nil
}

// shapeShhMessageFilter serves shh_newMessageFilter and shh_subscribe, which
// take the same filter object.
func shapeShhMessageFilter(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(3); err != nil {
		return nil, err
	}
	obj, err := FormatShhMessageFilter(a.at(0), a.at(1), a.at(2))
	if err != nil {
		return nil, a.wrap(err)
	}
	return []any{obj}, nil
}

func shapeShhPost(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(6); err != nil {
		return nil, err
	}
	obj, err := FormatShhMessage(a.at(0), a.at(1), a.at(2), a.at(3), a.at(4), a.at(5))
	if err != nil {
		return nil, a.wrap(err)
	}
	return []any{obj}, nil
}
