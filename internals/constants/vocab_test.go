package constants

import "testing"

func TestTagOptions(t *testing.T) {
	for _, category := range []string{TagCategoryMaterial, TagCategoryColor, TagCategoryFunction} {
		opts, ok := TagOptions(category)
		if !ok || len(opts) == 0 {
			t.Fatalf("category %q should have options", category)
		}
	}
	if _, ok := TagOptions("shape"); ok {
		t.Fatal("unknown category should not resolve")
	}
}

func TestIsAllowedTag(t *testing.T) {
	if !IsAllowedTag(TagCategoryMaterial, "Wood") {
		t.Fatal("Wood is a material")
	}
	if IsAllowedTag(TagCategoryColor, "Wood") {
		t.Fatal("Wood is not a color")
	}
	if IsAllowedTag(TagCategoryMaterial, "wood") {
		t.Fatal("vocabulary matching is case sensitive")
	}
}
