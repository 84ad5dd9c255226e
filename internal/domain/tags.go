package domain

import (
	"math/rand"
	"slices"
	"strings"
)

// JoinCaption joins tags into a single caption string.
func JoinCaption(tags []string, separator string) string {
	return strings.Join(tags, separator)
}

// SplitCaption splits a caption on the separator without any cleanup.
// Find/replace uses it so that replacements may legitimately produce
// empty or padded tags; RemoveEmptyTags cleans those up later.
func SplitCaption(caption, separator string) []string {
	return strings.Split(caption, separator)
}

// ParseCaption splits a caption on the separator, trims whitespace
// around each tag, and discards empty results. This is the sidecar read
// contract used at catalog load.
func ParseCaption(caption, separator string) []string {
	if caption == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(caption, separator) {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// MergeTags returns tags with every entry of toAdd that is not already
// present appended, preserving toAdd order. The input slice is returned
// unchanged when there is nothing to add.
func MergeTags(tags, toAdd []string) []string {
	merged := tags
	for _, tag := range toAdd {
		if !slices.Contains(merged, tag) {
			merged = append(slices.Clip(merged), tag)
		}
	}
	return merged
}

// RenameTag replaces every exact-match occurrence of old with new,
// keeping each occurrence's position.
func RenameTag(tags []string, old, new string) []string {
	renamed := make([]string, len(tags))
	for i, tag := range tags {
		if tag == old {
			renamed[i] = new
		} else {
			renamed[i] = tag
		}
	}
	return renamed
}

// RemoveTag drops every exact-match occurrence of tag.
func RemoveTag(tags []string, tag string) []string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	return kept
}

// DedupeTags keeps the first occurrence of each distinct tag and drops
// later duplicates, preserving first-occurrence order. Returns the
// deduplicated list and the number of tags removed.
func DedupeTags(tags []string) ([]string, int) {
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	return unique, len(tags) - len(unique)
}

// StripEmptyTags drops tags that are empty or all-whitespace. Returns
// the cleaned list and the number of tags removed.
func StripEmptyTags(tags []string) ([]string, int) {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) != "" {
			kept = append(kept, tag)
		}
	}
	return kept, len(tags) - len(kept)
}

// SortTagsAlphabetical sorts tags lexicographically in place. With
// keepFirst set, position 0 is left untouched and only the remainder is
// sorted.
func SortTagsAlphabetical(tags []string, keepFirst bool) {
	slices.Sort(sortable(tags, keepFirst))
}

// SortTagsByCount stable-sorts tags in place, descending by their count
// in the supplied frequency table. Ties keep their prior relative order.
// Tags absent from the table count as zero.
func SortTagsByCount(tags []string, counts TagCounts, keepFirst bool) {
	slices.SortStableFunc(sortable(tags, keepFirst), func(a, b string) int {
		return counts[b] - counts[a]
	})
}

// ShuffleTags permutes tags in place using the supplied random source,
// leaving position 0 fixed when keepFirst is set.
func ShuffleTags(tags []string, keepFirst bool, rng *rand.Rand) {
	part := sortable(tags, keepFirst)
	rng.Shuffle(len(part), func(i, j int) {
		part[i], part[j] = part[j], part[i]
	})
}

// sortable returns the reorderable portion of a tag list: everything,
// or everything after the pinned first tag.
func sortable(tags []string, keepFirst bool) []string {
	if keepFirst && len(tags) > 0 {
		return tags[1:]
	}
	return tags
}

// TagCounts maps tag text to its number of occurrences across the
// catalog, counting every occurrence including duplicates within one
// record.
type TagCounts map[string]int

// CountTags builds the catalog-wide tag frequency table.
func CountTags(images []*Image) TagCounts {
	counts := make(TagCounts)
	for _, img := range images {
		for _, tag := range img.Tags {
			counts[tag]++
		}
	}
	return counts
}
