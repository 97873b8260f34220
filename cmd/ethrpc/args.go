package main

import (
	"encoding/json"
	"math/big"
	"strings"
)

// parseArg turns one command-line token into a call argument. Integers
// become integers (so quantity positions get hex-formatted), "null" becomes
// an absent argument, JSON literals are decoded, and everything else is
// passed through as a string.
func parseArg(s string) any {
	switch s {
	case "null", "nil":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}

func parseArgs(tokens []string) []any {
	args := make([]any, len(tokens))
	for i, t := range tokens {
		args[i] = parseArg(t)
	}
	return args
}
