package model

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   ItemKind
	}{
		{name: "plain link", fields: map[string]any{"label": "FAQ", "href": "/faq"}, want: ItemLink},
		{name: "icon", fields: map[string]any{"label": "Call us", "icon": "Phone"}, want: ItemIcon},
		{name: "advanced", fields: map[string]any{"text": "<p>hi</p>"}, want: ItemAdvanced},
		{name: "advanced beats icon", fields: map[string]any{"text": "<p>hi</p>", "icon": "Phone"}, want: ItemAdvanced},
		{name: "empty text still advanced", fields: map[string]any{"text": "", "label": "x"}, want: ItemAdvanced},
		{name: "non string text ignored", fields: map[string]any{"text": 12, "icon": "Phone"}, want: ItemIcon},
		{name: "non string icon ignored", fields: map[string]any{"icon": true}, want: ItemLink},
		{name: "kind field does not override text", fields: map[string]any{"kind": "icon", "text": "<p>x</p>"}, want: ItemAdvanced},
		{name: "kind field does not override icon", fields: map[string]any{"kind": "link", "icon": "Phone"}, want: ItemIcon},
		{name: "kind field alone is a link", fields: map[string]any{"kind": "advanced", "label": "x"}, want: ItemLink},
		{name: "nil", fields: nil, want: ItemLink},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.fields); got != tc.want {
				t.Fatalf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestItemVariantDefaultsToLink(t *testing.T) {
	if got := (Item{Label: "x"}).Variant(); got != ItemLink {
		t.Fatalf("expected link variant, got %q", got)
	}
	if got := AdvancedItem("<b>x</b>").Variant(); got != ItemAdvanced {
		t.Fatalf("expected advanced variant, got %q", got)
	}
}

func TestPropsResolvedAttribution(t *testing.T) {
	props := Props{}
	if got := props.ResolvedAttribution(); got != DefaultAttribution() {
		t.Fatalf("expected default attribution, got %+v", got)
	}

	props.Attribution = &Attribution{Team: "Storefront"}
	got := props.ResolvedAttribution()
	if got.Team != "Storefront" {
		t.Fatalf("team override lost: %+v", got)
	}
	if got.PoweredByHref != DefaultAttribution().PoweredByHref {
		t.Fatalf("blank fields should fall back to defaults: %+v", got)
	}
}
