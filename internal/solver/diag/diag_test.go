package diag

import "testing"

func TestCountersNodeIncrements(t *testing.T) {
	c := NewCounters(&Flags{})
	c.Node()
	c.Node()
	if c.Nodes != 2 {
		t.Errorf("Nodes = %d, want 2", c.Nodes)
	}
}

func TestAllowXrayRespectsLimit(t *testing.T) {
	c := NewCounters(&Flags{XrayLogLimit: 2})
	if !c.AllowXray() {
		t.Fatal("expected first xray to be allowed")
	}
	if !c.AllowXray() {
		t.Fatal("expected second xray to be allowed")
	}
	if c.AllowXray() {
		t.Fatal("expected third xray to be denied once the limit is spent")
	}
}

func TestAllowXrayZeroLimitDeniesAll(t *testing.T) {
	c := NewCounters(&Flags{})
	if c.AllowXray() {
		t.Fatal("expected xray to be denied with a zero limit")
	}
}
