package ethrpc

import "fmt"

var debugMethods = []methodDef{
	{"debug_backtrace_at", "debug_backtraceAt", 1, shapeBacktraceAt},
	{"debug_block_profile", "debug_blockProfile", 1, positional(req("path"), qty("seconds"))},
	{"debug_cpu_profile", "debug_cpuProfile", 1, positional(req("path"), qty("seconds"))},
	{"debug_dump_block", "debug_dumpBlock", 1, positional(blk("block"))},
	{"debug_gc_stats", "debug_gcStats", 1, noParams},
	{"debug_get_block_rlp", "debug_getBlockRlp", 1, positional(blk("block"))},
	{"debug_go_trace", "debug_goTrace", 1, positional(req("path"), qty("seconds"))},
	{"debug_mem_stats", "debug_memStats", 1, noParams},
	{"debug_seed_hash", "debug_seedHash", 1, positional(blk("block"))},
	{"debug_set_head", "debug_setHead", 1, positional(blk("block"))},
	{"debug_set_block_profile_rate", "debug_setBlockProfileRate", 1, positional(qty("rate"))},
	{"debug_stacks", "debug_stacks", 1, noParams},
	{"debug_start_cpu_profile", "debug_startCPUProfile", 1, positional(req("path"))},
	{"debug_start_go_trace", "debug_startGoTrace", 1, positional(req("path"))},
	{"debug_stop_cpu_profile", "debug_stopCPUProfile", 1, noParams},
	{"debug_stop_go_trace", "debug_stopGoTrace", 1, noParams},
	{"debug_trace_block", "debug_traceBlock", 1, shapeTraceBlock},
	{"debug_trace_block_by_number", "debug_traceBlockByNumber", 1, shapeTraceBlock},
	{"debug_trace_block_by_hash", "debug_traceBlockByHash", 1, shapeTraceRaw("hash")},
	{"debug_trace_block_from_file", "debug_traceBlockFromFile", 1, shapeTraceRaw("path")},
	{"debug_trace_transaction", "debug_traceTransaction", 1, shapeTraceRaw("hash")},
	{"debug_verbosity", "debug_verbosity", 1, positional(qty("level"))},
	{"debug_vmodule", "debug_vmodule", 1, positional(req("pattern"))},
	{"debug_write_block_profile", "debug_writeBlockProfile", 1, positional(req("path"))},
	{"debug_write_mem_profile", "debug_writeMemProfile", 1, positional(req("path"))},
}

// shapeBacktraceAt joins file and line into the single "file.go:line"
// parameter debug_backtraceAt takes.
func shapeBacktraceAt(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(2); err != nil {
		return nil, err
	}
	file, err := a.required(0, "filename")
	if err != nil {
		return nil, err
	}
	line, err := a.required(1, "line")
	if err != nil {
		return nil, err
	}
	return []any{fmt.Sprintf("%v:%v", file, line)}, nil
}

// The debug_trace* methods always send a trailing config object; an empty
// one when the caller gives no options.

func shapeTraceBlock(_ *Registry, a arglist) ([]any, error) {
	if err := a.atMost(2); err != nil {
		return nil, err
	}
	b, err := a.block(0, "latest")
	if err != nil {
		return nil, err
	}
	opts, err := a.traceOptions(1)
	if err != nil {
		return nil, err
	}
	return []any{b, opts}, nil
}

func shapeTraceRaw(name string) shaper {
	return func(_ *Registry, a arglist) ([]any, error) {
		if err := a.atMost(2); err != nil {
			return nil, err
		}
		v, err := a.required(0, name)
		if err != nil {
			return nil, err
		}
		opts, err := a.traceOptions(1)
		if err != nil {
			return nil, err
		}
		return []any{v, opts}, nil
	}
}
