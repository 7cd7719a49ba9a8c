package transport

import "testing"

func TestNewUpgraderSatisfiesContract(t *testing.T) {
	var _ ChannelUpgrader = NewUpgrader(0, 0)
}

func TestHandshakeHeaderNamesCoversKeyFields(t *testing.T) {
	want := map[string]bool{
		"Sec-WebSocket-Key":     false,
		"Sec-WebSocket-Version": false,
		"Sec-WebSocket-Accept":  false,
	}
	for _, name := range HandshakeHeaderNames {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("HandshakeHeaderNames is missing %q", name)
		}
	}
}
