package ethrpc

var signerMethods = []methodDef{
	{"signer_confirm_request", "signer_confirmRequest", 1, shapeConfirmRequest("password parameter must be provided")},
	{"signer_confirm_request_raw", "signer_confirmRequestRaw", 1, positional(qty("requestID"), req("data"))},
	{"signer_confirm_request_with_token", "signer_confirmRequestWithToken", 1, shapeConfirmRequest("password or token parameter must be provided")},
	{"signer_generate_authorization_token", "signer_generateAuthorizationToken", 1, noParams},
	{"signer_generate_web_proxy_access_token", "signer_generateWebProxyAccessToken", 1, positional(req("domain"))},
	{"signer_reject_request", "signer_rejectRequest", 1, positional(qty("requestID"))},
	{"signer_requests_to_confirm", "signer_requestsToConfirm", 1, noParams},
	{"signer_subscribe_pending", "signer_subscribePending", 1, noParams},
	{"signer_unsubscribe_pending", "signer_unsubscribePending", 1, positional(qty("subscriptionID"))},
}

// shapeConfirmRequest builds [requestID, modificationObject, password]. The
// password (or token, for the WithToken variant) is mandatory even though it
// comes after the optional modification fields.
func shapeConfirmRequest(missingPassword string) shaper {
	return func(_ *Registry, a arglist) ([]any, error) {
		if err := a.atMost(5); err != nil {
			return nil, err
		}
		id, err := a.quantity(0, "requestID")
		if err != nil {
			return nil, err
		}
		if !a.present(4) {
			return nil, a.errf("%s", missingPassword)
		}
		obj, err := FormatSignerRequest(a.at(1), a.at(2), a.at(3))
		if err != nil {
			return nil, a.wrap(err)
		}
		return []any{id, obj, a.at(4)}, nil
	}
}
