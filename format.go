package ethrpc

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// quantityValue converts any supported integer kind to a *big.Int.
// Callers pass untyped positional arguments, so every native integer
// width plus *big.Int has to be accepted.
func quantityValue(v any) (*big.Int, error) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case *big.Int:
		if n == nil {
			return nil, fmt.Errorf("nil *big.Int is not a quantity")
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%T is not an integer quantity", v)
	}
}

// FormatQuantity renders a non-negative integer as a 0x-prefixed lowercase
// hex string with no leading zeros. Zero becomes "0x0".
func FormatQuantity(v any) (string, error) {
	n, err := quantityValue(v)
	if err != nil {
		return "", &ArgumentError{Reason: err.Error()}
	}
	if n.Sign() < 0 {
		return "", &ArgumentError{Reason: fmt.Sprintf("quantity must not be negative, got %s", n)}
	}
	return "0x" + n.Text(16), nil
}

// FormatHashrate renders a hashrate as a 0x-prefixed value zero-padded to
// 64 hex digits, the width eth_submitHashrate expects.
func FormatHashrate(v any) (string, error) {
	n, err := quantityValue(v)
	if err != nil {
		return "", &ArgumentError{Reason: err.Error()}
	}
	if n.Sign() < 0 {
		return "", &ArgumentError{Reason: fmt.Sprintf("hashrate must not be negative, got %s", n)}
	}
	return fmt.Sprintf("0x%064x", n), nil
}

// FormatBlock renders a block selector. Integers become quantities; strings
// (tags like "latest" as well as block hashes) pass through verbatim.
func FormatBlock(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return FormatQuantity(v)
}

// listValue normalizes a caller-supplied list argument to []any.
func listValue(v any) ([]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return t, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
}

// FormatFilter builds a log filter object. Absent selectors are omitted
// entirely rather than sent as null.
func FormatFilter(fromBlock, toBlock, address, topics any) (map[string]any, error) {
	obj := make(map[string]any)
	if fromBlock != nil {
		b, err := FormatBlock(fromBlock)
		if err != nil {
			return nil, err
		}
		obj["fromBlock"] = b
	}
	if toBlock != nil {
		b, err := FormatBlock(toBlock)
		if err != nil {
			return nil, err
		}
		obj["toBlock"] = b
	}
	if address != nil {
		obj["address"] = address
	}
	if topics != nil {
		l, err := listValue(topics)
		if err != nil {
			return nil, &ArgumentError{Reason: "topics: " + err.Error()}
		}
		obj["topics"] = l
	}
	return obj, nil
}

// FormatTransaction builds a transaction object for the send/sign/call
// family. Every field is optional and omitted when absent; the numeric
// fields are rendered as quantities.
func FormatTransaction(from, to, gas, gasPrice, value, data, nonce, condition any) (map[string]any, error) {
	obj := make(map[string]any)
	if from != nil {
		obj["from"] = from
	}
	if to != nil {
		obj["to"] = to
	}
	for _, f := range []struct {
		key string
		val any
	}{
		{"gas", gas},
		{"gasPrice", gasPrice},
		{"value", value},
		{"nonce", nonce},
	} {
		if f.val == nil {
			continue
		}
		q, err := FormatQuantity(f.val)
		if err != nil {
			return nil, &ArgumentError{Reason: f.key + ": " + reasonOf(err)}
		}
		obj[f.key] = q
	}
	if data != nil {
		obj["data"] = data
	}
	if condition != nil {
		obj["condition"] = condition
	}
	return obj, nil
}

// FormatSignerRequest builds the modification object taken by the
// signer_confirmRequest family. Unlike a transaction object it carries no
// addresses, only the fields the signer is allowed to override.
func FormatSignerRequest(gas, gasPrice, condition any) (map[string]any, error) {
	obj := make(map[string]any)
	if gas != nil {
		q, err := FormatQuantity(gas)
		if err != nil {
			return nil, &ArgumentError{Reason: "gas: " + reasonOf(err)}
		}
		obj["gas"] = q
	}
	if gasPrice != nil {
		q, err := FormatQuantity(gasPrice)
		if err != nil {
			return nil, &ArgumentError{Reason: "gasPrice: " + reasonOf(err)}
		}
		obj["gasPrice"] = q
	}
	if condition != nil {
		obj["condition"] = condition
	}
	return obj, nil
}

// FormatShhMessage builds a whisper post object. Topics, payload, priority
// and ttl are all mandatory; from and to are omitted when absent.
func FormatShhMessage(topics, payload, priority, ttl, from, to any) (map[string]any, error) {
	if topics == nil {
		return nil, &ArgumentError{Reason: "topics parameter must be provided"}
	}
	if payload == nil {
		return nil, &ArgumentError{Reason: "payload parameter must be provided"}
	}
	if priority == nil {
		return nil, &ArgumentError{Reason: "priority parameter must be provided"}
	}
	if ttl == nil {
		return nil, &ArgumentError{Reason: "ttl parameter must be provided"}
	}
	l, err := listValue(topics)
	if err != nil {
		return nil, &ArgumentError{Reason: "topics: " + err.Error()}
	}
	prio, err := FormatQuantity(priority)
	if err != nil {
		return nil, &ArgumentError{Reason: "priority: " + reasonOf(err)}
	}
	t, err := FormatQuantity(ttl)
	if err != nil {
		return nil, &ArgumentError{Reason: "ttl: " + reasonOf(err)}
	}
	obj := map[string]any{
		"topics":   l,
		"payload":  payload,
		"priority": prio,
		"ttl":      t,
	}
	if from != nil {
		obj["from"] = from
	}
	if to != nil {
		obj["to"] = to
	}
	return obj, nil
}

// FormatShhMessageFilter builds a whisper message filter. The decryptWith
// key is always present, null when no key pair is given; that position is
// part of the wire contract.
func FormatShhMessageFilter(topics, decryptWith, from any) (map[string]any, error) {
	if topics == nil {
		return nil, &ArgumentError{Reason: "topics parameter must be provided"}
	}
	l, err := listValue(topics)
	if err != nil {
		return nil, &ArgumentError{Reason: "topics: " + err.Error()}
	}
	obj := map[string]any{
		"topics":      l,
		"decryptWith": decryptWith,
	}
	if from != nil {
		obj["from"] = from
	}
	return obj, nil
}

// StoragePosition computes the eth_getStorageAt position for an entry of a
// mapping: keccak256 of the 32-byte left-padded key concatenated with the
// 32-byte left-padded slot index.
func StoragePosition(key string, slot uint64) (string, error) {
	raw := strings.TrimPrefix(strings.ToLower(key), "0x")
	if len(raw) == 0 || len(raw)%2 != 0 {
		return "", &ArgumentError{Reason: fmt.Sprintf("invalid storage key %q", key)}
	}
	keyBytes, err := hex.DecodeString(raw)
	if err != nil {
		return "", &ArgumentError{Reason: fmt.Sprintf("invalid storage key %q", key)}
	}
	if len(keyBytes) > 32 {
		return "", &ArgumentError{Reason: fmt.Sprintf("storage key %q longer than 32 bytes", key)}
	}

	buf := make([]byte, 64)
	copy(buf[32-len(keyBytes):32], keyBytes)
	new(big.Int).SetUint64(slot).FillBytes(buf[32:])

	h := sha3.NewLegacyKeccak256()
	h.Write(buf)
	return "0x" + hex.EncodeToString(h.Sum(nil)), nil
}

// reasonOf unwraps the reason from a formatter ArgumentError so it can be
// re-wrapped with field context without doubling the prefix.
func reasonOf(err error) string {
	if ae, ok := err.(*ArgumentError); ok {
		return ae.Reason
	}
	return err.Error()
}
