package application

import (
	"slices"
	"strings"

	"tagvault/internal/domain"
)

// Action labels recorded in history and shown in undo/redo prompts.
const (
	ActionAddTag      = "Add Tag"
	ActionAddTags     = "Add Tags"
	ActionRenameTag   = "Rename Tag"
	ActionDeleteTag   = "Delete Tag"
	ActionFindReplace = "Find and Replace"
	ActionSortTags    = "Sort Tags"
	ActionShuffleTags = "Shuffle Tags"
	ActionRemoveDupes = "Remove Duplicate Tags"
	ActionRemoveEmpty = "Remove Empty Tags"
)

// AddTags appends each tag not already present to every target record,
// preserving the given tag order. Restoring it asks for confirmation
// only when more than one record was targeted.
func (c *Catalog) AddTags(tags []string, positions []int) (Change, error) {
	action := ActionAddTags
	if len(tags) == 1 {
		action = ActionAddTag
	}
	if len(tags) == 0 || len(positions) == 0 {
		ch := newChange(action)
		ch.Applied = false
		return ch, nil
	}
	for _, pos := range positions {
		if pos < 0 || pos >= len(c.images) {
			return Change{}, &PositionError{Position: pos, Count: len(c.images)}
		}
	}

	c.snapshot(action, len(positions) > 1)

	ch := newChange(action)
	for _, pos := range positions {
		img := c.images[pos]
		merged := domain.MergeTags(img.Tags, tags)
		if len(merged) == len(img.Tags) {
			continue
		}
		img.Tags = merged
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// RenameTag replaces every exact occurrence of old with new across the
// catalog, or across visible records only when filteredOnly is set. A
// record counts as changed when it contained old at all, even if it
// already contained new elsewhere.
func (c *Catalog) RenameTag(old, new string, filteredOnly bool) (Change, error) {
	c.snapshot(ActionRenameTag, true)

	ch := newChange(ActionRenameTag)
	for pos, img := range c.images {
		if filteredOnly && !c.visible(img) {
			continue
		}
		if !slices.Contains(img.Tags, old) {
			continue
		}
		img.Tags = domain.RenameTag(img.Tags, old, new)
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// DeleteTag removes every exact occurrence of tag across the catalog,
// or across visible records only when filteredOnly is set.
func (c *Catalog) DeleteTag(tag string, filteredOnly bool) (Change, error) {
	c.snapshot(ActionDeleteTag, true)

	ch := newChange(ActionDeleteTag)
	for pos, img := range c.images {
		if filteredOnly && !c.visible(img) {
			continue
		}
		if !slices.Contains(img.Tags, tag) {
			continue
		}
		removed := len(img.Tags)
		img.Tags = domain.RemoveTag(img.Tags, tag)
		ch.Removed += removed - len(img.Tags)
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// FindAndReplace replaces every occurrence of find in each record's
// joined caption, within and across tag boundaries, then re-splits the
// caption into tags verbatim. Replacements may leave empty or padded
// tags; RemoveEmptyTags cleans those up. An empty find is silently a
// no-op and records nothing in history.
func (c *Catalog) FindAndReplace(find, replace string, filteredOnly bool) (Change, error) {
	if find == "" {
		ch := newChange(ActionFindReplace)
		ch.Applied = false
		return ch, nil
	}

	c.snapshot(ActionFindReplace, true)

	ch := newChange(ActionFindReplace)
	for pos, img := range c.images {
		if filteredOnly && !c.visible(img) {
			continue
		}
		caption := img.Caption(c.separator)
		if !strings.Contains(caption, find) {
			continue
		}
		caption = strings.ReplaceAll(caption, find, replace)
		img.Tags = domain.SplitCaption(caption, c.separator)
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// SortTags sorts every record's tags lexicographically, leaving the
// first tag pinned when keepFirst is set. Records with fewer than two
// tags are skipped; a record counts as changed only when the sort
// reordered something.
func (c *Catalog) SortTags(keepFirst bool) (Change, error) {
	c.snapshot(ActionSortTags, true)

	ch := newChange(ActionSortTags)
	for pos, img := range c.images {
		if len(img.Tags) < 2 {
			continue
		}
		before := img.Caption(c.separator)
		domain.SortTagsAlphabetical(img.Tags, keepFirst)
		if img.Caption(c.separator) == before {
			continue
		}
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// SortTagsByCount stable-sorts every record's tags descending by their
// count in the supplied catalog-wide frequency table, with the same
// pinned-first option and change detection as SortTags. The table is
// supplied by the caller so one count pass can serve the whole batch.
func (c *Catalog) SortTagsByCount(counts domain.TagCounts, keepFirst bool) (Change, error) {
	c.snapshot(ActionSortTags, true)

	ch := newChange(ActionSortTags)
	for pos, img := range c.images {
		if len(img.Tags) < 2 {
			continue
		}
		before := img.Caption(c.separator)
		domain.SortTagsByCount(img.Tags, counts, keepFirst)
		if img.Caption(c.separator) == before {
			continue
		}
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// ShuffleTags randomly permutes every record's tags, leaving the first
// tag pinned when keepFirst is set. Records with enough tags to permute
// (two, or three with the first pinned) always count as changed and are
// always persisted, even when the permutation lands on the identity.
func (c *Catalog) ShuffleTags(keepFirst bool) (Change, error) {
	c.snapshot(ActionShuffleTags, true)

	threshold := 2
	if keepFirst {
		threshold = 3
	}
	ch := newChange(ActionShuffleTags)
	for pos, img := range c.images {
		if len(img.Tags) < threshold {
			continue
		}
		domain.ShuffleTags(img.Tags, keepFirst, c.rng)
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// RemoveDuplicateTags keeps the first occurrence of each distinct tag
// in every record and drops later duplicates. The change reports the
// total number of tags removed across the catalog.
func (c *Catalog) RemoveDuplicateTags() (Change, error) {
	c.snapshot(ActionRemoveDupes, true)

	ch := newChange(ActionRemoveDupes)
	for pos, img := range c.images {
		unique, removed := domain.DedupeTags(img.Tags)
		if removed == 0 {
			continue
		}
		img.Tags = unique
		ch.Removed += removed
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// RemoveEmptyTags drops empty and all-whitespace tags from every
// record, reporting the total number removed.
func (c *Catalog) RemoveEmptyTags() (Change, error) {
	c.snapshot(ActionRemoveEmpty, true)

	ch := newChange(ActionRemoveEmpty)
	for pos, img := range c.images {
		kept, removed := domain.StripEmptyTags(img.Tags)
		if removed == 0 {
			continue
		}
		img.Tags = kept
		ch.Removed += removed
		ch.mark(pos)
		c.persist(img, &ch)
	}
	c.finish(&ch)
	return ch, nil
}

// SetTags overwrites one record's tag list outside the batch flows: no
// snapshot, no confirmation. Equal tags are a complete no-op; otherwise
// the record is persisted and the single position notified.
func (c *Catalog) SetTags(position int, tags []string) (Change, error) {
	img := c.ImageAt(position)
	if img == nil {
		return Change{}, &PositionError{Position: position, Count: len(c.images)}
	}

	ch := Change{Action: "Set Tags", First: -1, Last: -1}
	if slices.Equal(img.Tags, tags) {
		return ch, nil
	}

	img.Tags = slices.Clone(tags)
	ch.Applied = true
	ch.mark(position)
	c.persist(img, &ch)
	c.finish(&ch)
	return ch, nil
}

// MatchCount counts occurrences of text across captions: exact-match
// tags when wholeTags is set, otherwise non-overlapping substring
// occurrences in each record's joined caption. Empty text matches
// nothing.
func (c *Catalog) MatchCount(text string, filteredOnly, wholeTags bool) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, img := range c.images {
		if filteredOnly && !c.visible(img) {
			continue
		}
		if wholeTags {
			for _, tag := range img.Tags {
				if tag == text {
					count++
				}
			}
		} else {
			count += strings.Count(img.Caption(c.separator), text)
		}
	}
	return count
}
