package domain

import "testing"

func TestTurnLimitForStar(t *testing.T) {
	limits := map[int]int{1: 4, 2: 5, 3: 7, 4: 10, 5: 14}
	for star, want := range limits {
		if got := TurnLimitForStar(star); got != want {
			t.Fatalf("TurnLimitForStar(%d) = %d, want %d", star, got, want)
		}
	}
	if got := TurnLimitForStar(0); got != 5 {
		t.Fatalf("unknown star default = %d, want 5", got)
	}
	if got := TurnLimitForStar(9); got != 5 {
		t.Fatalf("unknown star default = %d, want 5", got)
	}
}

func TestManaForStar(t *testing.T) {
	pools := map[int]int{1: 100, 2: 125, 3: 175, 4: 250, 5: 350}
	for star, want := range pools {
		if got := ManaForStar(star); got != want {
			t.Fatalf("ManaForStar(%d) = %d, want %d", star, got, want)
		}
	}
	if got := ManaForStar(0); got != 0 {
		t.Fatalf("unknown star pool = %d, want 0", got)
	}
}

func TestManaBootCost_FullRefill(t *testing.T) {
	costs := map[int]float64{1: 30, 2: 37.5, 3: 52.5, 4: 75, 5: 105}
	for star, want := range costs {
		if got := ManaBootCost(star, ManaForStar(star)); got != want {
			t.Fatalf("full refill cost star %d = %v, want %v", star, got, want)
		}
	}
}

func TestManaBootCost_Partial(t *testing.T) {
	// half a tier-1 pool costs half the refill price
	if got := ManaBootCost(1, 50); got != 15 {
		t.Fatalf("ManaBootCost(1, 50) = %v, want 15", got)
	}
}

func TestManaBootCost_Degenerate(t *testing.T) {
	if got := ManaBootCost(0, 100); got != 0 {
		t.Fatalf("unknown star cost = %v, want 0", got)
	}
	if got := ManaBootCost(3, 0); got != 0 {
		t.Fatalf("zero delta cost = %v, want 0", got)
	}
	if got := ManaBootCost(3, -10); got != 0 {
		t.Fatalf("negative delta cost = %v, want 0", got)
	}
}
