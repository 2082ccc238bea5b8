package specdb

import "testing"

func TestNPGLookup(t *testing.T) {
	if !IsNPG("NPG_A") || !IsNPG("NPG_9") {
		t.Fatal("expected NPG_A and NPG_9 to be declared")
	}
	if IsNPG("NPG_999") {
		t.Fatal("NPG_999 should not be declared")
	}
}

func TestJMessageValidNPGs(t *testing.T) {
	m, ok := JMessageByID("J3/2")
	if !ok {
		t.Fatal("J3/2 should be declared")
	}
	found := false
	for _, npg := range m.ValidNPGs {
		if npg == "NPG_6" {
			found = true
		}
	}
	if found {
		t.Fatal("J3/2 should not list NPG_6 as a valid NPG (used by a negative test scenario)")
	}
}

func TestRoleScoping(t *testing.T) {
	if !IsLink16Role("NetControlStation") {
		t.Fatal("NetControlStation should be a Link-16 role")
	}
	if IsLink22Role("NetControlStation") {
		t.Fatal("NetControlStation should not be a Link-22 role")
	}
	if !IsLink22Role("Controller") {
		t.Fatal("Controller should be a Link-22 role")
	}
}

func TestEnumTables(t *testing.T) {
	if !IsClassification("SECRET") || IsClassification("BOGUS") {
		t.Fatal("classification membership wrong")
	}
	if !IsOperatingMode("Hybrid") || IsOperatingMode("BOGUS") {
		t.Fatal("operating mode membership wrong")
	}
	if !IsDataRate("High") || IsDataRate("BOGUS") {
		t.Fatal("data rate membership wrong")
	}
}
