package geom

import "testing"

func TestNamedResolvesStandardColors(t *testing.T) {
	c, err := Named("red")
	if err != nil {
		t.Fatalf("Named(red) error = %v", err)
	}
	if c.Kind != ColorNamed || c.Index != 1 {
		t.Fatalf("Named(red) = %+v, want ColorNamed index 1", c)
	}
}

func TestNamedRejectsUnknownName(t *testing.T) {
	if _, err := Named("not-a-color"); err == nil {
		t.Fatal("Named(not-a-color) error = nil, want an error")
	}
}

func TestIndexedAndRGB(t *testing.T) {
	i := Indexed(200)
	if i.Kind != ColorIndexed || i.Index != 200 {
		t.Fatalf("Indexed(200) = %+v, want ColorIndexed index 200", i)
	}
	rgb := RGB(10, 20, 30)
	if rgb.Kind != ColorRGB || rgb.R != 10 || rgb.G != 20 || rgb.B != 30 {
		t.Fatalf("RGB(10,20,30) = %+v, want matching ColorRGB", rgb)
	}
}

func TestDowngradeTo256PassesThroughNonRGB(t *testing.T) {
	for _, c := range []Color{Default, Indexed(42), mustNamed(t, "blue")} {
		if got := c.DowngradeTo256(); got != c {
			t.Errorf("DowngradeTo256(%+v) = %+v, want unchanged", c, got)
		}
	}
}

func TestDowngradeTo256ProjectsIntoIndexedRange(t *testing.T) {
	c := RGB(255, 0, 0)
	got := c.DowngradeTo256()
	if got.Kind != ColorIndexed {
		t.Fatalf("DowngradeTo256(red) kind = %v, want ColorIndexed", got.Kind)
	}
	if got.Index < 16 {
		t.Fatalf("DowngradeTo256(red) index = %d, want >= 16 (outside the 16 ANSI slots)", got.Index)
	}
}

func TestStyleIsZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Fatal("zero Style.IsZero() = false, want true")
	}
	if (Style{Bold: true}).IsZero() {
		t.Fatal("Style{Bold: true}.IsZero() = true, want false")
	}
}

func mustNamed(t *testing.T, name string) Color {
	t.Helper()
	c, err := Named(name)
	if err != nil {
		t.Fatalf("Named(%q) error = %v", name, err)
	}
	return c
}
