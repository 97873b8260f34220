package ethrpc

// A shaper turns the caller's positional arguments into the params array of
// the wire request. The registry is passed through for the handful of
// meta-methods (parity_subscribe) that resolve other methods.
type shaper func(r *Registry, a arglist) ([]any, error)

// arglist carries the caller's arguments together with the method name so
// validation errors identify the call they came from.
type arglist struct {
	method string
	vals   []any
}

func (a arglist) at(i int) any {
	if i < len(a.vals) {
		return a.vals[i]
	}
	return nil
}

// present reports whether position i was supplied and is non-nil. An
// explicit nil counts as absent, matching the omit-if-absent contract.
func (a arglist) present(i int) bool {
	return i < len(a.vals) && a.vals[i] != nil
}

func (a arglist) errf(format string, args ...any) error {
	return argErrorf(a.method, format, args...)
}

// wrap attaches the method name to a formatter error.
func (a arglist) wrap(err error) error {
	return a.errf("%s", reasonOf(err))
}

func (a arglist) atMost(n int) error {
	if len(a.vals) > n {
		return a.errf("too many arguments: got %d, want at most %d", len(a.vals), n)
	}
	return nil
}

func (a arglist) required(i int, name string) (any, error) {
	if !a.present(i) {
		return nil, a.errf("%s parameter must be provided", name)
	}
	return a.vals[i], nil
}

func (a arglist) string(i int, name string) (string, error) {
	v, err := a.required(i, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", a.errf("%s must be a string, got %T", name, v)
	}
	return s, nil
}

func (a arglist) quantity(i int, name string) (string, error) {
	v, err := a.required(i, name)
	if err != nil {
		return "", err
	}
	q, err := FormatQuantity(v)
	if err != nil {
		return "", a.errf("%s: %s", name, reasonOf(err))
	}
	return q, nil
}

// block renders position i as a block selector, falling back to def when the
// argument is absent.
func (a arglist) block(i int, def string) (string, error) {
	if !a.present(i) {
		return def, nil
	}
	b, err := FormatBlock(a.vals[i])
	if err != nil {
		return "", a.errf("block: %s", reasonOf(err))
	}
	return b, nil
}

func (a arglist) list(i int, name string) ([]any, error) {
	v, err := a.required(i, name)
	if err != nil {
		return nil, err
	}
	l, err := listValue(v)
	if err != nil {
		return nil, a.errf("%s: %s", name, err)
	}
	return l, nil
}

// transaction formats the leading transaction-object arguments
// (from, to, gas, gasPrice, value, data and optionally nonce, condition).
func (a arglist) transaction(withNonce, withCondition bool) (map[string]any, error) {
	var nonce, condition any
	if withNonce {
		nonce = a.at(6)
	}
	if withCondition {
		condition = a.at(7)
	}
	obj, err := FormatTransaction(a.at(0), a.at(1), a.at(2), a.at(3), a.at(4), a.at(5), nonce, condition)
	if err != nil {
		return nil, a.wrap(err)
	}
	return obj, nil
}

// traceOptions returns the trailing options object taken by the debug_trace*
// methods. The position is always sent; absent means an empty object.
func (a arglist) traceOptions(i int) (map[string]any, error) {
	if !a.present(i) {
		return map[string]any{}, nil
	}
	m, ok := a.vals[i].(map[string]any)
	if !ok {
		return nil, a.errf("options must be an object, got %T", a.vals[i])
	}
	return m, nil
}

type paramKind int

const (
	kindRaw paramKind = iota
	kindQuantity
	kindBlock
	kindList
)

// param describes one positional parameter for the positional combinator.
// Defaults are stored already wire-formatted.
type param struct {
	name     string
	kind     paramKind
	def      any
	optional bool
}

func req(name string) param          { return param{name: name} }
func opt(name string, def any) param { return param{name: name, def: def, optional: true} }
func qty(name string) param          { return param{name: name, kind: kindQuantity} }
func qtyOpt(name, def string) param {
	return param{name: name, kind: kindQuantity, def: def, optional: true}
}
func blk(name string) param { return param{name: name, kind: kindBlock, def: "latest", optional: true} }
func lst(name string) param { return param{name: name, kind: kindList} }

// positional builds a shaper for the common case of a fixed parameter list:
// required parameters must be present, optional ones fall back to their
// default, and each value is rendered according to its kind.
func positional(ps ...param) shaper {
	return func(_ *Registry, a arglist) ([]any, error) {
		if err := a.atMost(len(ps)); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(ps))
		for i, p := range ps {
			if !a.present(i) {
				if !p.optional {
					return nil, a.errf("%s parameter must be provided", p.name)
				}
				out = append(out, p.def)
				continue
			}
			v := a.vals[i]
			switch p.kind {
			case kindQuantity:
				q, err := FormatQuantity(v)
				if err != nil {
					return nil, a.errf("%s: %s", p.name, reasonOf(err))
				}
				out = append(out, q)
			case kindBlock:
				b, err := FormatBlock(v)
				if err != nil {
					return nil, a.errf("%s: %s", p.name, reasonOf(err))
				}
				out = append(out, b)
			case kindList:
				l, err := listValue(v)
				if err != nil {
					return nil, a.errf("%s: %s", p.name, err)
				}
				out = append(out, l)
			default:
				out = append(out, v)
			}
		}
		return out, nil
	}
}

// noParams rejects any arguments and sends an empty params array.
func noParams(_ *Registry, a arglist) ([]any, error) {
	if len(a.vals) != 0 {
		return nil, a.errf("takes no arguments, got %d", len(a.vals))
	}
	return []any{}, nil
}

// variadicAddresses gathers the trailing arguments into one array parameter,
// preceded by the named required leading parameters.
func variadicAddresses(leading ...string) shaper {
	return func(_ *Registry, a arglist) ([]any, error) {
		out := make([]any, 0, len(leading)+1)
		for i, name := range leading {
			v, err := a.required(i, name)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		rest := make([]any, 0, max(0, len(a.vals)-len(leading)))
		if len(a.vals) > len(leading) {
			rest = append(rest, a.vals[len(leading):]...)
		}
		return append(out, rest), nil
	}
}
