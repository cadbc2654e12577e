package storage

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenIsEmpty(t *testing.T) {
	store := openStore(t)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh journal has %d rounds", n)
	}

	// A second journal never sees the first one's rounds.
	if _, err := store.SaveRound(Round{Skin: "burger", Score: 10}); err != nil {
		t.Fatal(err)
	}
	other := openStore(t)
	if n, _ := other.Count(); n != 0 {
		t.Errorf("second journal has %d rounds", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	want := Round{
		Skin: "taco", Score: 230, Highscore: 230,
		EvilHits: 9, HeroHits: 1, SuperHits: 1, Supers: 2,
		DurationMs: 30000, Seed: 77, Algorithm: "cmwc", Difficulty: "hard",
	}
	id, err := store.SaveRound(want)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRound() id %q is not a UUID: %v", id, err)
	}

	got, err := store.RoundByID(id)
	if err != nil || got == nil {
		t.Fatalf("RoundByID() = %v, %v", got, err)
	}
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if *got != want {
		t.Errorf("RoundByID() = %+v, expected %+v", *got, want)
	}

	missing, err := store.RoundByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RoundByID(unknown) = %v, %v", missing, err)
	}
}

func TestStoreTopRounds(t *testing.T) {
	store := openStore(t)

	for _, r := range []Round{
		{Skin: "burger", Score: 100},
		{Skin: "burger", Score: 50},
		{Skin: "taco", Score: 500},
		{Skin: "burger", Score: 200},
		{Skin: "burger", Score: 100, Seed: 2},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		skin   string
		limit  int
		scores []uint32
	}{
		{"one skin", "burger", 10, []uint32{200, 100, 100, 50}},
		{"limited", "burger", 2, []uint32{200, 100}},
		{"all skins", "", 3, []uint32{500, 200, 100}},
		{"unknown skin", "pizza", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rounds, err := store.TopRounds(tc.skin, tc.limit)
			if err != nil {
				t.Fatalf("TopRounds() failed: %v", err)
			}
			if len(rounds) != len(tc.scores) {
				t.Fatalf("got %d rounds, expected %d", len(rounds), len(tc.scores))
			}
			for i, r := range rounds {
				if r.Score != tc.scores[i] {
					t.Errorf("round %d score %d, expected %d", i, r.Score, tc.scores[i])
				}
			}
		})
	}

	// Equal scores keep journal order.
	rounds, _ := store.TopRounds("burger", 10)
	if rounds[1].Seed != 0 || rounds[2].Seed != 2 {
		t.Errorf("tied rounds out of order: %+v", rounds[1:3])
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openStore(t)
	for i := uint32(1); i <= 5; i++ {
		store.SaveRound(Round{Skin: "burger", Score: i})
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 || rounds[0].Score != 5 || rounds[2].Score != 3 {
		t.Errorf("RecentRounds(3) = %+v", rounds)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("burger")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty journal, got %d", high)
	}

	store.SaveRound(Round{Skin: "burger", Score: 100})
	store.SaveRound(Round{Skin: "burger", Score: 300})
	store.SaveRound(Round{Skin: "taco", Score: 400})

	if high, _ := store.HighScore("burger"); high != 300 {
		t.Errorf("HighScore(burger) = %d, expected 300", high)
	}
	if high, _ := store.HighScore(""); high != 400 {
		t.Errorf("HighScore(all) = %d, expected 400", high)
	}
}

func TestStoreRecordRound(t *testing.T) {
	store := openStore(t)

	err := store.RecordRound(shooter.RoundSummary{
		Skin: "taco", Score: 130, Highscore: 160,
		EvilHits: 5, HeroHits: 1,
		StartedAt: 2000, EndedAt: 32000,
		Seed: 9, Algorithm: "mt19937",
	})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	rounds, err := store.TopRounds("taco", 1)
	if err != nil || len(rounds) != 1 {
		t.Fatalf("TopRounds() = %v, %v", rounds, err)
	}
	r := rounds[0]
	if r.Score != 130 || r.Highscore != 160 || r.DurationMs != 30000 || r.Algorithm != "mt19937" {
		t.Errorf("journaled round %+v", r)
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	store.SaveRound(Round{Skin: "burger", Score: 100, EvilHits: 4, HeroHits: 1})
	store.SaveRound(Round{Skin: "burger", Score: 300, EvilHits: 10, SuperHits: 1})
	store.SaveRound(Round{Skin: "taco", Score: 60, EvilHits: 2})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Stats() has %d skins, expected 2", len(stats))
	}

	b := stats["burger"]
	if b.Rounds != 2 || b.HighScore != 300 || b.AvgScore != 200 || b.TotalScore != 400 {
		t.Errorf("burger stats %+v", b)
	}
	if b.EvilHits != 14 || b.HeroHits != 1 || b.SuperHits != 1 {
		t.Errorf("burger hit totals %+v", b)
	}
	if stats["taco"].Rounds != 1 {
		t.Errorf("taco stats %+v", stats["taco"])
	}
}

func TestStoreClear(t *testing.T) {
	store := openStore(t)
	store.SaveRound(Round{Skin: "burger", Score: 100})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if n, _ := store.Count(); n != 0 {
		t.Errorf("Count() = %d after Clear", n)
	}
}
