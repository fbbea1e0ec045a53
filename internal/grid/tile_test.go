package grid

import "testing"

func TestAnnounceComposition(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		tier VisibilityTier
		want string
	}{
		{
			name: "terrain only",
			tile: Tile{Terrain: "grass", Passable: true},
			tier: VisibilityFull,
			want: "grass",
		},
		{
			name: "object with qualifiers",
			tile: Tile{Terrain: "grass", Passable: true, Object: &Object{Name: "sawmill", UnderConstruction: true}},
			tier: VisibilityFull,
			want: "sawmill, under construction",
		},
		{
			name: "ruin marked impassable",
			tile: Tile{Terrain: "grass", Object: &Object{Name: "house", Ruin: true, Marked: true}},
			tier: VisibilityFull,
			want: "house, ruin, marked, impassable",
		},
		{
			name: "occupant summary grouped and pluralized",
			tile: Tile{Terrain: "grass", Passable: true, Occupants: []Occupant{
				{Category: "worker"}, {Category: "fox"}, {Category: "worker"},
			}},
			tier: VisibilityFull,
			want: "grass, 2 workers, 1 fox",
		},
		{
			name: "hidden",
			tile: Tile{Terrain: "grass", Object: &Object{Name: "sawmill"}},
			tier: VisibilityHidden,
			want: "undiscovered",
		},
		{
			name: "type only hides contents",
			tile: Tile{Terrain: "grass", Object: &Object{Name: "sawmill"}},
			tier: VisibilityType,
			want: "grass",
		},
	}
	for _, tc := range cases {
		if got := Announce(tc.tile, tc.tier); got != tc.want {
			t.Fatalf("%s: Announce = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFingerprintExcludesOccupants(t *testing.T) {
	base := Tile{Terrain: "grass", Passable: true}
	busy := base
	busy.Occupants = []Occupant{{Category: "worker"}}
	if Fingerprint(base) != Fingerprint(busy) {
		t.Fatalf("occupants must not alter the fingerprint")
	}
}

func TestFingerprintDistinguishesContent(t *testing.T) {
	a := Tile{Terrain: "grass", Passable: true}
	b := Tile{Terrain: "grass", Passable: false}
	if Fingerprint(a) == Fingerprint(b) {
		t.Fatalf("passability must alter the fingerprint")
	}
	c := Tile{Terrain: "grass", Passable: true, Object: &Object{Name: "tree"}}
	d := Tile{Terrain: "grass", Passable: true, Object: &Object{Name: "tree", Marked: true}}
	if Fingerprint(c) == Fingerprint(d) {
		t.Fatalf("object qualifiers must alter the fingerprint")
	}
}
