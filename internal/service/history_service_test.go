package service

import (
	"testing"
	"time"

	"gamefi_backend/internal/domain"
)

func TestGroupHistoriesByDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.History{
		{RewardNumber: 10, ExpNumber: 5, CreatedAt: start.Add(2 * time.Hour)},
		{RewardNumber: 20, ExpNumber: 7, CreatedAt: start.Add(23 * time.Hour)},
		{RewardNumber: 3, ExpNumber: 1, CreatedAt: start.Add(25 * time.Hour)},
	}

	days := GroupHistoriesByDay(entries, start, 2)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}

	if days[0].Date != "2024-03-01" {
		t.Fatalf("day 0 date %q", days[0].Date)
	}
	if days[0].TotalReward != 30 || days[0].TotalExp != 12 {
		t.Fatalf("day 0 totals reward=%v exp=%v, want 30/12", days[0].TotalReward, days[0].TotalExp)
	}
	if len(days[0].Entries) != 2 {
		t.Fatalf("day 0 entries = %d, want 2", len(days[0].Entries))
	}

	if days[1].Date != "2024-03-02" {
		t.Fatalf("day 1 date %q", days[1].Date)
	}
	if days[1].TotalReward != 3 || days[1].TotalExp != 1 {
		t.Fatalf("day 1 totals reward=%v exp=%v, want 3/1", days[1].TotalReward, days[1].TotalExp)
	}
}

func TestGroupHistoriesByDay_EmptyDaysStillAppear(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	days := GroupHistoriesByDay(nil, start, 2)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	for _, d := range days {
		if d.TotalReward != 0 || d.TotalExp != 0 || len(d.Entries) != 0 {
			t.Fatalf("empty day has data: %+v", d)
		}
	}
}

func TestGroupHistoriesByDay_OutOfRangeDropped(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.History{
		{RewardNumber: 10, CreatedAt: start.Add(-time.Hour)},
		{RewardNumber: 20, CreatedAt: start.Add(49 * time.Hour)},
	}
	days := GroupHistoriesByDay(entries, start, 2)
	if days[0].TotalReward != 0 || days[1].TotalReward != 0 {
		t.Fatalf("out-of-range entries were counted: %+v", days)
	}
}
