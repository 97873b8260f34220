package ethrpc

import "testing"

func TestRegistryNamesAreInverses(t *testing.T) {
	r := DefaultRegistry()
	for _, d := range r.Methods() {
		if got := r.WireName(d.ClientName); got != d.WireName {
			t.Errorf("WireName(%s) = %s, want %s", d.ClientName, got, d.WireName)
		}
		if got := r.ClientName(d.WireName); got != d.ClientName {
			t.Errorf("ClientName(%s) = %s, want %s", d.WireName, got, d.ClientName)
		}
	}
}

func TestRegistryUnknownNamesPassThrough(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"eth_notAMethod", "", "some_random_name"} {
		if got := r.WireName(name); got != name {
			t.Errorf("WireName(%q) = %q, want identity", name, got)
		}
		if got := r.ClientName(name); got != name {
			t.Errorf("ClientName(%q) = %q, want identity", name, got)
		}
	}
}

func TestRegistryLookupByEitherName(t *testing.T) {
	r := DefaultRegistry()
	byClient, ok := r.Lookup("eth_get_balance")
	if !ok {
		t.Fatal("eth_get_balance not registered")
	}
	byWire, ok := r.Lookup("eth_getBalance")
	if !ok {
		t.Fatal("eth_getBalance not registered")
	}
	if byClient != byWire {
		t.Error("client and wire lookups resolved different descriptors")
	}
}

func TestRegistryFixedIDs(t *testing.T) {
	tests := []struct {
		name string
		id   int
	}{
		{"web3_client_version", 67},
		{"web3_sha3", 64},
		{"net_peer_count", 74},
		{"eth_block_number", 83},
		{"eth_gas_price", 73},
		{"eth_hashrate", 71},
		{"eth_coinbase", 64},
		{"eth_get_balance", 1},
		{"shh_version", 67},
		{"shh_post", 73},
		{"trace_raw_transaction", 1},
	}

	r := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.Lookup(tt.name)
			if !ok {
				t.Fatalf("%s not registered", tt.name)
			}
			if d.ID != tt.id {
				t.Errorf("%s id = %d, want %d", tt.name, d.ID, tt.id)
			}
		})
	}
}

func TestRegistryOddWireNames(t *testing.T) {
	r := DefaultRegistry()
	if got := r.WireName("trace_raw_transaction"); got != "trace_RawTransaction" {
		t.Errorf("trace_raw_transaction wire name = %s, want trace_RawTransaction", got)
	}
}

func TestRegistrySize(t *testing.T) {
	if n := len(DefaultRegistry().Methods()); n != 242 {
		t.Errorf("registry holds %d methods, want 242", n)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	newRegistry([]methodDef{
		{"a_method", "a_method", 1, noParams},
		{"a_method", "aMethod", 1, noParams},
	})
}
