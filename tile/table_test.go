package tile

import "testing"

func TestTableVariants(t *testing.T) {
	tb := NewTable([]string{"elbow_11000000", "decor"})

	t.Run("sixteen_variants_per_source", func(t *testing.T) {
		for i := range tb.VariantsByIndex {
			if len(tb.VariantsByIndex[i]) != 16 {
				t.Fatalf("source %d: expected 16 variants, got %d", i, len(tb.VariantsByIndex[i]))
			}
		}
	})

	t.Run("connections_match_transform", func(t *testing.T) {
		base := sigFromKey(t, "11000000")
		for _, rot := range Rotations {
			for _, mx := range [2]bool{false, true} {
				for _, my := range [2]bool{false, true} {
					want := Transform(base, rot, mx, my)
					got := tb.Connections(0, rot, mx, my)
					if got == nil || *got != want {
						t.Fatalf("rot=%d mx=%v my=%v: got %v, want %s", rot, mx, my, got, want.Key())
					}
				}
			}
		}
	})

	t.Run("non_directional_is_nil", func(t *testing.T) {
		if tb.ConnectionsByIndex[1] != nil {
			t.Fatalf("decor should have nil connections")
		}
		if tb.Connections(1, 90, true, false) != nil {
			t.Fatalf("decor variant should have nil connections")
		}
		if len(tb.VariantsByKey[""]) != 16 {
			t.Fatalf("expected 16 non-directional placements, got %d", len(tb.VariantsByKey[""]))
		}
	})

	t.Run("reverse_index_is_consistent", func(t *testing.T) {
		for key, ps := range tb.VariantsByKey {
			for _, p := range ps {
				conns := tb.Connections(p.Index, p.Rotation, p.MirrorX, p.MirrorY)
				if key == "" {
					if conns != nil {
						t.Fatalf("placement %+v should be non-directional", p)
					}
					continue
				}
				if conns == nil || conns.Key() != key {
					t.Fatalf("placement %+v does not produce key %s", p, key)
				}
			}
		}
	})

	t.Run("out_of_range_index", func(t *testing.T) {
		if tb.Connections(5, 0, false, false) != nil {
			t.Fatalf("expected nil for out-of-range index")
		}
	})
}

func TestTableHash(t *testing.T) {
	a := NewTable([]string{"a_10000000", "b"})
	b := NewTable([]string{"a_10000000", "b"})
	c := NewTable([]string{"b", "a_10000000"})
	if a.Hash() != b.Hash() {
		t.Fatalf("identical source lists must hash equal")
	}
	if a.Hash() == c.Hash() {
		t.Fatalf("reordered source lists must hash differently")
	}
}

func TestTableRemap(t *testing.T) {
	old := NewTable([]string{"elbow_11000000", "decor", "bar_10001000"})

	t.Run("name_wins_over_index", func(t *testing.T) {
		nu := NewTable([]string{"bar_10001000", "elbow_11000000"})
		got := nu.Remap(Tile{ImageIndex: 0, Rotation: 90, Name: "elbow_11000000"}, old)
		if got.ImageIndex != 1 || got.Rotation != 90 {
			t.Fatalf("got %+v, want index 1 rotation 90", got)
		}
	})

	t.Run("signature_rematch_without_name", func(t *testing.T) {
		// bar_10001000 at rotation 90 connects E+W; pipe_00100010 matches
		// it at rotation 0.
		nu := NewTable([]string{"decor", "pipe_00100010"})
		got := nu.Remap(Tile{ImageIndex: 2, Rotation: 90, PlacedOrder: 7}, old)
		if got.ImageIndex != 1 {
			t.Fatalf("got %+v, want index 1", got)
		}
		sig := nu.ConnectionsOf(got)
		if sig == nil || sig.Key() != "00100010" {
			t.Fatalf("remapped tile must keep its transformed signature, got %v", sig)
		}
		if got.PlacedOrder != 7 {
			t.Fatalf("remap must preserve placed order")
		}
	})

	t.Run("no_match_becomes_empty", func(t *testing.T) {
		nu := NewTable([]string{"solo_11111111"})
		got := nu.Remap(Tile{ImageIndex: 2, Rotation: 0}, old)
		if !got.IsEmpty() {
			t.Fatalf("expected empty, got %+v", got)
		}
	})

	t.Run("sentinels_pass_through", func(t *testing.T) {
		nu := NewTable(nil)
		if got := nu.Remap(Empty(), old); !got.IsEmpty() {
			t.Fatalf("empty must survive remap")
		}
		if got := nu.Remap(Error(), old); !got.IsError() {
			t.Fatalf("error marker must survive remap")
		}
	})
}

func TestTableRematch(t *testing.T) {
	nu := NewTable([]string{"decor", "pipe_10001000"})

	t.Run("name_wins", func(t *testing.T) {
		got := nu.Rematch(Tile{ImageIndex: 5, Rotation: 90, Name: "pipe_10001000"})
		if got.ImageIndex != 1 || got.Rotation != 90 {
			t.Fatalf("got %+v, want index 1 rotation 90", got)
		}
	})

	t.Run("unknown_name_rematches_by_signature", func(t *testing.T) {
		got := nu.Rematch(Tile{ImageIndex: 3, Name: "bar_10001000", Rotation: 90, PlacedOrder: 5})
		if got.ImageIndex != 1 || got.Name != "pipe_10001000" {
			t.Fatalf("got %+v, want pipe_10001000", got)
		}
		sig := nu.ConnectionsOf(got)
		if sig == nil || sig.Key() != "00100010" {
			t.Fatalf("rematch must keep the transformed signature, got %v", sig)
		}
		if got.PlacedOrder != 5 {
			t.Fatalf("rematch must preserve placed order")
		}
	})

	t.Run("non_directional_name_rematches_to_non_directional", func(t *testing.T) {
		got := nu.Rematch(Tile{ImageIndex: 3, Name: "gone"})
		if got.ImageIndex != 0 || got.Name != "decor" {
			t.Fatalf("got %+v, want decor", got)
		}
	})

	t.Run("unrealizable_signature_becomes_empty", func(t *testing.T) {
		got := nu.Rematch(Tile{ImageIndex: 3, Name: "diag_01000000", PlacedOrder: 2})
		if !got.IsEmpty() || got.PlacedOrder != 2 {
			t.Fatalf("expected empty with order kept, got %+v", got)
		}
	})

	t.Run("sentinels_pass_through", func(t *testing.T) {
		if got := nu.Rematch(Empty()); !got.IsEmpty() {
			t.Fatalf("empty must survive rematch")
		}
		if got := nu.Rematch(Error()); !got.IsError() {
			t.Fatalf("error marker must survive rematch")
		}
	})
}
