package ethrpc

// Note the odd capitalization of trace_RawTransaction: that is what the
// node expects on the wire.

var traceMethods = []methodDef{
	{"trace_block", "trace_block", 1, positional(blk("block"))},
	{"trace_call", "trace_call", 1, shapeTransactionCall},
	{"trace_filter", "trace_filter", 1, shapeFilterObject},
	{"trace_get", "trace_get", 1, positional(req("hash"), qtyOpt("index", "0x0"))},
	{"trace_raw_transaction", "trace_RawTransaction", 1, positional(req("data"), lst("traceTypes"))},
	{"trace_replay_transaction", "trace_replayTransaction", 1, positional(req("hash"), lst("traceTypes"))},
	{"trace_transaction", "trace_transaction", 1, positional(req("hash"))},
}
