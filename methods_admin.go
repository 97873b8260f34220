package ethrpc

// Geth management API. admin_startRPC/admin_startWS carry the node's own
// listener defaults (localhost, 8545/8546, no CORS, eth/net/web3).

var adminMethods = []methodDef{
	{"admin_add_peer", "admin_addPeer", 1, positional(req("enode"))},
	{"admin_datadir", "admin_datadir", 1, noParams},
	{"admin_node_info", "admin_nodeInfo", 1, noParams},
	{"admin_peers", "admin_peers", 1, noParams},
	{"admin_set_solc", "admin_setSolc", 1, positional(req("path"))},
	{"admin_start_rpc", "admin_startRPC", 1, positional(opt("host", "localhost"), qtyOpt("port", "0x2161"), opt("cors", ""), opt("apis", "eth,net,web3"))},
	{"admin_start_ws", "admin_startWS", 1, positional(opt("host", "localhost"), qtyOpt("port", "0x2162"), opt("cors", ""), opt("apis", "eth,net,web3"))},
	{"admin_stop_rpc", "admin_stopRPC", 1, noParams},
	{"admin_stop_ws", "admin_stopWS", 1, noParams},
}
