package ethrpc

import "fmt"

// methodDef is one row of the method tables in methods_*.go.
type methodDef struct {
	client string
	wire   string
	id     int
	shape  shaper
}

// MethodDescriptor describes one registered RPC method: the snake_case name
// used by callers, the camelCase name sent on the wire, and the fixed
// request id the reference documentation assigns to the method.
type MethodDescriptor struct {
	ClientName string
	WireName   string
	ID         int

	shape shaper
}

// Registry maps method names in both directions. It is built once at init
// and never mutated afterwards, so lookups need no locking.
type Registry struct {
	byClient map[string]*MethodDescriptor
	byWire   map[string]*MethodDescriptor
	ordered  []*MethodDescriptor
}

func newRegistry(tables ...[]methodDef) *Registry {
	r := &Registry{
		byClient: make(map[string]*MethodDescriptor),
		byWire:   make(map[string]*MethodDescriptor),
	}
	for _, table := range tables {
		for _, d := range table {
			r.register(d)
		}
	}
	return r
}

// register panics on duplicates: a name collision in the tables is a
// programming error and must fail at init, not at call time.
func (r *Registry) register(d methodDef) {
	if d.shape == nil {
		panic(fmt.Sprintf("ethrpc: method %s has no shaper", d.client))
	}
	if _, dup := r.byClient[d.client]; dup {
		panic(fmt.Sprintf("ethrpc: duplicate client method name %q", d.client))
	}
	if _, dup := r.byWire[d.wire]; dup {
		panic(fmt.Sprintf("ethrpc: duplicate wire method name %q", d.wire))
	}
	md := &MethodDescriptor{
		ClientName: d.client,
		WireName:   d.wire,
		ID:         d.id,
		shape:      d.shape,
	}
	r.byClient[d.client] = md
	r.byWire[d.wire] = md
	r.ordered = append(r.ordered, md)
}

// WireName translates a client-style name to its wire name. Unknown names
// pass through unchanged.
func (r *Registry) WireName(name string) string {
	if d, ok := r.byClient[name]; ok {
		return d.WireName
	}
	return name
}

// ClientName translates a wire name to its client-style name. Unknown names
// pass through unchanged.
func (r *Registry) ClientName(name string) string {
	if d, ok := r.byWire[name]; ok {
		return d.ClientName
	}
	return name
}

// Lookup resolves a method by either of its names.
func (r *Registry) Lookup(name string) (*MethodDescriptor, bool) {
	if d, ok := r.byClient[name]; ok {
		return d, true
	}
	if d, ok := r.byWire[name]; ok {
		return d, true
	}
	return nil, false
}

// Methods returns every registered descriptor in registration order.
func (r *Registry) Methods() []*MethodDescriptor {
	out := make([]*MethodDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

var methods = newRegistry(
	web3Methods,
	netMethods,
	ethMethods,
	personalMethods,
	parityMethods,
	parityAccountsMethods,
	paritySetMethods,
	signerMethods,
	traceMethods,
	adminMethods,
	debugMethods,
	minerMethods,
	txpoolMethods,
	shhMethods,
)

// DefaultRegistry returns the registry holding every built-in method.
func DefaultRegistry() *Registry { return methods }
