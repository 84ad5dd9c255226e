package application

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"tagvault/internal/domain"
	"tagvault/internal/ports"
)

func TestAddTags(t *testing.T) {
	t.Run("appends only missing tags", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"cat"})

		ch, err := c.AddTags([]string{"cat", "dog"}, []int{0})
		if err != nil {
			t.Fatalf("AddTags failed: %v", err)
		}

		want := []string{"cat", "dog"}
		if !slices.Equal(c.ImageAt(0).Tags, want) {
			t.Errorf("expected %v, got %v", want, c.ImageAt(0).Tags)
		}
		if ch.Changed != 1 {
			t.Errorf("expected 1 changed record, got %d", ch.Changed)
		}
		if !slices.Equal(store.tags["/photos/000.png"], want) {
			t.Errorf("expected persisted %v, got %v", want, store.tags["/photos/000.png"])
		}
	})

	t.Run("record already holding every tag is unchanged", func(t *testing.T) {
		c, store, notifier := setupCatalog(t, []string{"cat", "dog"})

		ch, err := c.AddTags([]string{"cat"}, []int{0})
		if err != nil {
			t.Fatalf("AddTags failed: %v", err)
		}

		if ch.Changed != 0 {
			t.Errorf("expected 0 changed records, got %d", ch.Changed)
		}
		if len(store.writeLog) != 0 {
			t.Error("unchanged record was written")
		}
		if len(notifier.ranges) != 0 {
			t.Error("unchanged add emitted a range notification")
		}
		// The snapshot still landed.
		if c.UndoDepth() != 1 {
			t.Errorf("expected undo depth 1, got %d", c.UndoDepth())
		}
	})

	t.Run("label is singular for one tag", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{}, []string{})

		c.AddTags([]string{"solo"}, []int{0})
		if action, _ := c.NextUndo(); action != "Add Tag" {
			t.Errorf("expected Add Tag, got %q", action)
		}

		c.AddTags([]string{"one", "two"}, []int{0})
		if action, _ := c.NextUndo(); action != "Add Tags" {
			t.Errorf("expected Add Tags, got %q", action)
		}
	})

	t.Run("multi-target restore needs confirmation", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{}, []string{})

		c.AddTags([]string{"x"}, []int{0, 1})

		p := c.BeginUndo()
		if p == nil || !p.NeedsConfirm() {
			t.Error("expected multi-target add undo to need confirmation")
		}
	})

	t.Run("invalid position fails before snapshotting", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"cat"})

		_, err := c.AddTags([]string{"x"}, []int{0, 5})
		if !errors.Is(err, ErrNoSuchPosition) {
			t.Fatalf("expected ErrNoSuchPosition, got %v", err)
		}
		if c.UndoDepth() != 0 {
			t.Error("failed add left a snapshot behind")
		}
		if !slices.Equal(c.ImageAt(0).Tags, []string{"cat"}) {
			t.Error("failed add mutated a record")
		}
	})

	t.Run("no targets is a guarded no-op", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"cat"})

		ch, err := c.AddTags([]string{"x"}, nil)
		if err != nil {
			t.Fatalf("AddTags failed: %v", err)
		}
		if ch.Applied {
			t.Error("expected no-op for empty target list")
		}
		if c.UndoDepth() != 0 {
			t.Error("no-op add pushed a snapshot")
		}
	})
}

func TestRenameTag(t *testing.T) {
	t.Run("renames across the catalog", func(t *testing.T) {
		c, _, _ := setupCatalog(t,
			[]string{"cat", "indoor"},
			[]string{"dog"},
			[]string{"cat"},
		)

		ch, err := c.RenameTag("cat", "lion", false)
		if err != nil {
			t.Fatalf("RenameTag failed: %v", err)
		}

		if ch.Changed != 2 || ch.First != 0 || ch.Last != 2 {
			t.Errorf("expected 2 changed over [0,2], got %+v", ch)
		}
		if !slices.Equal(c.ImageAt(0).Tags, []string{"lion", "indoor"}) {
			t.Errorf("unexpected tags %v", c.ImageAt(0).Tags)
		}
		if !slices.Equal(c.ImageAt(1).Tags, []string{"dog"}) {
			t.Errorf("record without the tag changed: %v", c.ImageAt(1).Tags)
		}
	})

	t.Run("record containing both old and new still changes", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"x", "y"})

		ch, err := c.RenameTag("x", "y", false)
		if err != nil {
			t.Fatalf("RenameTag failed: %v", err)
		}

		if ch.Changed != 1 {
			t.Errorf("expected the record in the changed set, got %+v", ch)
		}
		if !slices.Equal(c.ImageAt(0).Tags, []string{"y", "y"}) {
			t.Errorf("expected [y y], got %v", c.ImageAt(0).Tags)
		}
	})

	t.Run("filtered scope skips invisible records", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"cat"}, []string{"cat"})
		c.SetFilter(ports.FilterFunc(func(img *domain.Image) bool {
			return img.Path == "/photos/001.png"
		}))

		ch, err := c.RenameTag("cat", "lion", true)
		if err != nil {
			t.Fatalf("RenameTag failed: %v", err)
		}

		if ch.Changed != 1 || ch.First != 1 || ch.Last != 1 {
			t.Errorf("expected only position 1 changed, got %+v", ch)
		}
		if !slices.Equal(c.ImageAt(0).Tags, []string{"cat"}) {
			t.Error("invisible record was renamed")
		}
	})

	t.Run("unscoped rename ignores the filter", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"cat"}, []string{"cat"})
		c.SetFilter(ports.FilterFunc(func(img *domain.Image) bool { return false }))

		ch, err := c.RenameTag("cat", "lion", false)
		if err != nil {
			t.Fatalf("RenameTag failed: %v", err)
		}
		if ch.Changed != 2 {
			t.Errorf("expected both records renamed, got %+v", ch)
		}
	})
}

func TestDeleteTag(t *testing.T) {
	c, _, _ := setupCatalog(t,
		[]string{"cat", "dog", "cat"},
		[]string{"dog"},
	)

	ch, err := c.DeleteTag("cat", false)
	if err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}

	if !slices.Equal(c.ImageAt(0).Tags, []string{"dog"}) {
		t.Errorf("expected [dog], got %v", c.ImageAt(0).Tags)
	}
	if ch.Changed != 1 || ch.Removed != 2 {
		t.Errorf("expected 1 changed and 2 removed, got %+v", ch)
	}
}

func TestFindAndReplace(t *testing.T) {
	t.Run("replaces within and across tag boundaries", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"a cat", "catfish"})

		ch, err := c.FindAndReplace("cat", "dog", false)
		if err != nil {
			t.Fatalf("FindAndReplace failed: %v", err)
		}

		want := []string{"a dog", "dogfish"}
		if !slices.Equal(c.ImageAt(0).Tags, want) {
			t.Errorf("expected %v, got %v", want, c.ImageAt(0).Tags)
		}
		if ch.Changed != 1 {
			t.Errorf("expected 1 changed record, got %d", ch.Changed)
		}
	})

	t.Run("replacement spanning the separator rewrites tag boundaries", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"one", "two"})

		// The joined caption is "one, two"; replacing "e, t" with "e-t"
		// merges the two tags.
		if _, err := c.FindAndReplace("e, t", "e-t", false); err != nil {
			t.Fatalf("FindAndReplace failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"one-two"}) {
			t.Errorf("expected [one-two], got %v", c.ImageAt(0).Tags)
		}
	})

	t.Run("empty find is a silent no-op", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"cat"})

		ch, err := c.FindAndReplace("", "dog", false)
		if err != nil {
			t.Fatalf("FindAndReplace failed: %v", err)
		}

		if ch.Applied {
			t.Error("empty find reported as applied")
		}
		if c.UndoDepth() != 0 {
			t.Error("empty find pushed a snapshot")
		}
		if len(store.writeLog) != 0 {
			t.Error("empty find wrote to disk")
		}
	})

	t.Run("record without a match is untouched", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"bird"}, []string{"cat"})

		ch, err := c.FindAndReplace("cat", "dog", false)
		if err != nil {
			t.Fatalf("FindAndReplace failed: %v", err)
		}

		if ch.Changed != 1 || ch.First != 1 {
			t.Errorf("expected only position 1 changed, got %+v", ch)
		}
		if len(store.writeLog) != 1 {
			t.Errorf("expected exactly one write, got %v", store.writeLog)
		}
	})
}

func TestSortTags(t *testing.T) {
	t.Run("sorts and detects real changes only", func(t *testing.T) {
		c, store, _ := setupCatalog(t,
			[]string{"dog", "cat"},
			[]string{"ant", "bee"},
			[]string{"solo"},
		)

		ch, err := c.SortTags(false)
		if err != nil {
			t.Fatalf("SortTags failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"cat", "dog"}) {
			t.Errorf("expected sorted tags, got %v", c.ImageAt(0).Tags)
		}
		// Already-sorted and single-tag records are not counted.
		if ch.Changed != 1 || ch.First != 0 || ch.Last != 0 {
			t.Errorf("expected only position 0 changed, got %+v", ch)
		}
		if len(store.writeLog) != 1 {
			t.Errorf("expected one write, got %v", store.writeLog)
		}
	})

	t.Run("keeps the first tag pinned", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"zebra", "dog", "cat"})

		if _, err := c.SortTags(true); err != nil {
			t.Fatalf("SortTags failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"zebra", "cat", "dog"}) {
			t.Errorf("expected pinned first tag, got %v", c.ImageAt(0).Tags)
		}
	})
}

func TestSortTagsByCount(t *testing.T) {
	counts := domain.TagCounts{"a": 5, "b": 1}

	t.Run("orders by descending frequency", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"b", "a"})

		ch, err := c.SortTagsByCount(counts, false)
		if err != nil {
			t.Fatalf("SortTagsByCount failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"a", "b"}) {
			t.Errorf("expected [a b], got %v", c.ImageAt(0).Tags)
		}
		if ch.Changed != 1 {
			t.Errorf("expected 1 changed, got %+v", ch)
		}
	})

	t.Run("pinned first tag leaves the record unchanged", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"b", "a"})

		ch, err := c.SortTagsByCount(counts, true)
		if err != nil {
			t.Fatalf("SortTagsByCount failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"b", "a"}) {
			t.Errorf("expected [b a] untouched, got %v", c.ImageAt(0).Tags)
		}
		if ch.Changed != 0 || len(store.writeLog) != 0 {
			t.Errorf("no-op sort persisted or counted changes: %+v", ch)
		}
	})
}

func TestShuffleTags(t *testing.T) {
	t.Run("shuffled records always count as changed", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"a", "b"}, []string{"solo"})
		c.SetRand(rand.New(rand.NewSource(7)))

		ch, err := c.ShuffleTags(false)
		if err != nil {
			t.Fatalf("ShuffleTags failed: %v", err)
		}

		// Even if the permutation happened to be identity, the record
		// with two tags counts as changed and is persisted.
		if ch.Changed != 1 || ch.First != 0 || ch.Last != 0 {
			t.Errorf("expected position 0 changed, got %+v", ch)
		}
		if len(store.writeLog) != 1 {
			t.Errorf("expected one write, got %v", store.writeLog)
		}
	})

	t.Run("pinned first raises the threshold to three", func(t *testing.T) {
		c, store, _ := setupCatalog(t, []string{"a", "b"}, []string{"a", "b", "c"})

		ch, err := c.ShuffleTags(true)
		if err != nil {
			t.Fatalf("ShuffleTags failed: %v", err)
		}

		if ch.Changed != 1 || ch.First != 1 || ch.Last != 1 {
			t.Errorf("expected only the three-tag record changed, got %+v", ch)
		}
		if c.ImageAt(1).Tags[0] != "a" {
			t.Errorf("pinned tag moved: %v", c.ImageAt(1).Tags)
		}
		if len(store.writeLog) != 1 {
			t.Errorf("expected one write, got %v", store.writeLog)
		}
	})

	t.Run("seeded source is reproducible", func(t *testing.T) {
		run := func() []string {
			c, _, _ := setupCatalog(t, []string{"a", "b", "c", "d", "e"})
			c.SetRand(rand.New(rand.NewSource(99)))
			if _, err := c.ShuffleTags(false); err != nil {
				t.Fatalf("ShuffleTags failed: %v", err)
			}
			return slices.Clone(c.ImageAt(0).Tags)
		}

		if first, second := run(), run(); !slices.Equal(first, second) {
			t.Errorf("same seed diverged: %v vs %v", first, second)
		}
	})
}

func TestRemoveDuplicateTags(t *testing.T) {
	c, _, _ := setupCatalog(t,
		[]string{"a", "b", "a", "c", "b"},
		[]string{"clean"},
	)

	ch, err := c.RemoveDuplicateTags()
	if err != nil {
		t.Fatalf("RemoveDuplicateTags failed: %v", err)
	}

	if !slices.Equal(c.ImageAt(0).Tags, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", c.ImageAt(0).Tags)
	}
	if ch.Removed != 2 || ch.Changed != 1 {
		t.Errorf("expected 2 removed in 1 record, got %+v", ch)
	}
}

func TestRemoveEmptyTags(t *testing.T) {
	c, _, _ := setupCatalog(t, []string{"a", "", " ", "b"})

	ch, err := c.RemoveEmptyTags()
	if err != nil {
		t.Fatalf("RemoveEmptyTags failed: %v", err)
	}

	if !slices.Equal(c.ImageAt(0).Tags, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", c.ImageAt(0).Tags)
	}
	if ch.Removed != 2 {
		t.Errorf("expected 2 removed, got %d", ch.Removed)
	}
}

func TestSetTags(t *testing.T) {
	t.Run("overwrites without history", func(t *testing.T) {
		c, store, notifier := setupCatalog(t, []string{"old"})

		ch, err := c.SetTags(0, []string{"new", "tags"})
		if err != nil {
			t.Fatalf("SetTags failed: %v", err)
		}

		if !slices.Equal(c.ImageAt(0).Tags, []string{"new", "tags"}) {
			t.Errorf("expected [new tags], got %v", c.ImageAt(0).Tags)
		}
		if c.UndoDepth() != 0 {
			t.Error("direct replace pushed a snapshot")
		}
		if !slices.Equal(store.tags["/photos/000.png"], []string{"new", "tags"}) {
			t.Error("direct replace not persisted")
		}
		want := [][2]int{{0, 0}}
		if !slices.Equal(notifier.ranges, want) {
			t.Errorf("expected single-position envelope, got %v", notifier.ranges)
		}
		if !ch.Applied || ch.Changed != 1 {
			t.Errorf("unexpected change %+v", ch)
		}
	})

	t.Run("equal tags are a complete no-op", func(t *testing.T) {
		c, store, notifier := setupCatalog(t, []string{"same"})

		ch, err := c.SetTags(0, []string{"same"})
		if err != nil {
			t.Fatalf("SetTags failed: %v", err)
		}

		if ch.Applied {
			t.Error("no-op replace reported as applied")
		}
		if len(store.writeLog) != 0 || len(notifier.ranges) != 0 {
			t.Error("no-op replace wrote or notified")
		}
	})

	t.Run("caller keeps ownership of the slice", func(t *testing.T) {
		c, _, _ := setupCatalog(t, nil)

		tags := []string{"mine"}
		if _, err := c.SetTags(0, tags); err != nil {
			t.Fatalf("SetTags failed: %v", err)
		}
		tags[0] = "mutated"

		if c.ImageAt(0).Tags[0] != "mine" {
			t.Error("record aliased the caller's slice")
		}
	})

	t.Run("out of range position", func(t *testing.T) {
		c, _, _ := setupCatalog(t, []string{"cat"})

		if _, err := c.SetTags(3, []string{"x"}); !errors.Is(err, ErrNoSuchPosition) {
			t.Errorf("expected ErrNoSuchPosition, got %v", err)
		}
	})
}

func TestMatchCount(t *testing.T) {
	c, _, _ := setupCatalog(t,
		[]string{"cat", "catfish"},
		[]string{"cat"},
		[]string{"dog"},
	)

	t.Run("substring mode counts caption occurrences", func(t *testing.T) {
		if got := c.MatchCount("cat", false, false); got != 3 {
			t.Errorf("expected 3 matches, got %d", got)
		}
	})

	t.Run("whole-tag mode counts exact tags", func(t *testing.T) {
		if got := c.MatchCount("cat", false, true); got != 2 {
			t.Errorf("expected 2 matches, got %d", got)
		}
	})

	t.Run("filtered mode skips invisible records", func(t *testing.T) {
		c.SetFilter(ports.FilterFunc(func(img *domain.Image) bool {
			return img.Path == "/photos/000.png"
		}))
		defer c.SetFilter(nil)

		if got := c.MatchCount("cat", true, true); got != 1 {
			t.Errorf("expected 1 match, got %d", got)
		}
	})

	t.Run("empty text matches nothing", func(t *testing.T) {
		if got := c.MatchCount("", false, false); got != 0 {
			t.Errorf("expected 0 matches, got %d", got)
		}
	})
}

func TestMutation_WriteFailureContinuesBatch(t *testing.T) {
	c, store, _ := setupCatalog(t, []string{"x"}, []string{"x"}, []string{"x"})

	diskErr := errors.New("permission denied")
	store.failOn["/photos/000.png"] = diskErr

	ch, err := c.DeleteTag("x", false)
	if err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}

	if len(ch.Errors) != 1 {
		t.Fatalf("expected 1 write error, got %d", len(ch.Errors))
	}
	var writeErr *WriteError
	if !errors.As(ch.Errors[0], &writeErr) {
		t.Fatalf("expected WriteError, got %T", ch.Errors[0])
	}
	if writeErr.Path != "/photos/000.png" {
		t.Errorf("unexpected failing path %s", writeErr.Path)
	}

	// All three records changed in memory and the two healthy ones
	// reached disk.
	if ch.Changed != 3 {
		t.Errorf("expected 3 changed, got %d", ch.Changed)
	}
	if len(store.writeLog) != 2 {
		t.Errorf("expected 2 successful writes, got %v", store.writeLog)
	}
}
