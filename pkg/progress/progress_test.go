package progress

import "testing"

func TestSilentBar(t *testing.T) {
	b := Silent(10)
	for i := 0; i < 10; i++ {
		b.Inc()
	}
	b.Finish()
}

func TestIterYieldsAllValues(t *testing.T) {
	b := Silent(5)
	var got []int
	for i := range b.Iter(5) {
		got = append(got, i)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 values, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected ordered values, got %v", got)
		}
	}
}

func TestAddAndSet(t *testing.T) {
	b := Silent(100)
	b.Add(10)
	b.Set(50)
	b.Finish()
}
