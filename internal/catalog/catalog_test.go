package catalog

import "testing"

func TestElementsFixedOrder(t *testing.T) {
	want := []string{"Carbon", "Gold", "Chlorine", "Sodium"}
	got := Elements()
	if len(got) != len(want) {
		t.Fatalf("Expected %d elements, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Elements()[%d] = %q; want %q", i, got[i].Name, name)
		}
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	a := Elements()
	a[0].Name = "Mutated"
	if Elements()[0].Name != "Carbon" {
		t.Error("Elements() exposed the backing catalog")
	}
}

func TestItemMatches(t *testing.T) {
	carbon := Item{Name: "Carbon"}
	tests := []struct {
		input string
		want  bool
	}{
		{"Carbon", true},
		{"CARBON", true},
		{"carbon", true},
		{"cArBoN", true},
		{"carbo", false},
		{" carbon", false},
		{"carbon ", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := carbon.Matches(tt.input); got != tt.want {
			t.Errorf("Matches(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	it, ok := Lookup("Gold")
	if !ok {
		t.Fatal("Expected Gold to be found")
	}
	if it.Symbol != "Au" || it.Number != 79 {
		t.Errorf("Unexpected Gold tile data: %+v", it)
	}

	if _, ok := Lookup("Unobtainium"); ok {
		t.Error("Expected unknown key to miss")
	}
}
