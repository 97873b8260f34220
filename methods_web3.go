package ethrpc

// https://github.com/ethereum/wiki/wiki/JSON-RPC#web3_clientversion

var web3Methods = []methodDef{
	{"web3_client_version", "web3_clientVersion", 67, noParams},
	{"web3_sha3", "web3_sha3", 64, positional(req("data"))},
}

var netMethods = []methodDef{
	{"net_listening", "net_listening", 67, noParams},
	{"net_peer_count", "net_peerCount", 74, noParams},
	{"net_version", "net_version", 67, noParams},
}
