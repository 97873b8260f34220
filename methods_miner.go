package ethrpc

var minerMethods = []methodDef{
	{"miner_set_extra", "miner_setExtra", 1, positional(req("data"))},
	{"miner_set_gas_price", "miner_setGasPrice", 1, positional(qty("gasPrice"))},
	{"miner_start", "miner_start", 1, positional(qty("threads"))},
	{"miner_stop", "miner_stop", 1, noParams},
	{"miner_set_ether_base", "miner_setEtherBase", 1, positional(req("address"))},
}

var txpoolMethods = []methodDef{
	{"txpool_content", "txpool_content", 1, noParams},
	{"txpool_inspect", "txpool_inspect", 1, noParams},
	{"txpool_status", "txpool_status", 1, noParams},
}
