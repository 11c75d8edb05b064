package fieldcase_test

import (
	"testing"

	"adforge/fieldcase"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"":                    "",
		"id":                  "id",
		"campaignId":          "campaign_id",
		"businessDescription": "business_description",
		"imageURL":            "image_url",
		"URL":                 "url",
		"targetAudience":      "target_audience",
		"already_snake":       "already_snake",
	}
	for in, want := range cases {
		if got := fieldcase.ToSnake(in); got != want {
			t.Fatalf("ToSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToCamel(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"id":               "id",
		"campaign_id":      "campaignId",
		"engagement_score": "engagementScore",
		"_id":              "_id",
		"key_products":     "keyProducts",
		"alreadyCamel":     "alreadyCamel",
	}
	for in, want := range cases {
		if got := fieldcase.ToCamel(in); got != want {
			t.Fatalf("ToCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapToCamelRecursesIntoNestedValues(t *testing.T) {
	in := map[string]any{
		"brand_tone": "playful",
		"key_products": []any{
			map[string]any{"product_name": "cold brew"},
		},
		"social_links": map[string]any{"instagram_url": "https://example.com"},
	}

	out := fieldcase.MapToCamel(in)

	if _, ok := out["brandTone"]; !ok {
		t.Fatalf("expected brandTone key, got %v", out)
	}
	nested, ok := out["socialLinks"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map under socialLinks, got %T", out["socialLinks"])
	}
	if _, ok := nested["instagramUrl"]; !ok {
		t.Fatalf("expected instagramUrl in nested map, got %v", nested)
	}
	items, ok := out["keyProducts"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one keyProducts item, got %v", out["keyProducts"])
	}
	if _, ok := items[0].(map[string]any)["productName"]; !ok {
		t.Fatalf("expected productName inside slice element, got %v", items[0])
	}

	// original must be untouched
	if _, ok := in["brand_tone"]; !ok {
		t.Fatalf("input map was modified")
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []string{"campaign_id", "image_url", "engagement_score", "body"}
	for _, k := range keys {
		if got := fieldcase.ToSnake(fieldcase.ToCamel(k)); got != k {
			t.Fatalf("round trip of %q produced %q", k, got)
		}
	}
}
