package cell

import "testing"

func TestConstructors(t *testing.T) {
	if !(Basic{}).Alive().IsAlive() {
		t.Fatal("Basic.Alive must be alive")
	}
	if (Basic{}).Dead().IsAlive() {
		t.Fatal("Basic.Dead must be dead")
	}
	if (Basic{}).IsAlive() {
		t.Fatal("zero Basic must be dead")
	}
	if !Bit(0).Alive().IsAlive() || Bit(1).Dead().IsAlive() {
		t.Fatal("Bit constructors disagree with IsAlive")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, alive := range []bool{false, true} {
		b := FromBool[Basic](alive)
		bit := Convert[Bit](b)
		back := Convert[Basic](bit)
		if bit.IsAlive() != alive || back.IsAlive() != alive {
			t.Fatalf("conversion lost state: alive=%v bit=%d back=%v", alive, bit, back)
		}
		if want := Bit(0); !alive && bit != want {
			t.Fatalf("dead bit = %d, want %d", bit, want)
		}
	}
}

func TestStateString(t *testing.T) {
	if got := (Basic{}).Alive().String(); got != "alive" {
		t.Fatalf("String() = %q, want alive", got)
	}
	if got := Dead.String(); got != "dead" {
		t.Fatalf("String() = %q, want dead", got)
	}
}
