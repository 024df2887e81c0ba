package maplib

import "testing"

func TestCost_Normalised(t *testing.T) {
	if NewCost(10, 4) != NewCost(5, 2) {
		t.Fatalf("10/4 and 5/2 should be identical, got %v and %v", NewCost(10, 4), NewCost(5, 2))
	}
	if NewCost(0, 7) != (Cost{}) {
		t.Fatalf("0/7 should equal the zero cost, got %#v", NewCost(0, 7))
	}
	if NewCost(3, -6) != NewCost(-1, 2) {
		t.Fatal("negative denominator should move its sign to the numerator")
	}
	if CostOf(4) != NewCost(8, 2) {
		t.Fatal("CostOf(4) should equal 8/2")
	}
}

func TestCost_AddAndCompare(t *testing.T) {
	sand := NewCost(5, 2)
	tests := []struct {
		name string
		got  Cost
		want Cost
	}{
		{"int plus int", CostOf(1).Add(CostOf(2)), CostOf(3)},
		{"sand plus sand", sand.Add(sand), CostOf(5)},
		{"open plus sand", CostOf(1).Add(sand), NewCost(7, 2)},
		{"thirds", NewCost(1, 3).Add(NewCost(1, 6)), NewCost(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !CostOf(2).Less(sand) {
		t.Fatal("2 should be less than 5/2")
	}
	if sand.LessEq(CostOf(2)) {
		t.Fatal("5/2 should not be <= 2")
	}
	if sand.Cmp(NewCost(10, 4)) != 0 {
		t.Fatal("5/2 should compare equal to 10/4")
	}
	if CostOf(3).Cmp(sand) != 1 {
		t.Fatal("3 should be greater than 5/2")
	}
}

func TestCost_String(t *testing.T) {
	if s := NewCost(5, 2).String(); s != "5/2" {
		t.Fatalf("got %q, want 5/2", s)
	}
	if s := CostOf(3).String(); s != "3" {
		t.Fatalf("got %q, want 3", s)
	}
	if s := (Cost{}).String(); s != "0" {
		t.Fatalf("got %q, want 0", s)
	}
}

func TestNewCost_ZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewCost(1, 0)
}
