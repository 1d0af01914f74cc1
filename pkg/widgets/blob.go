package widgets

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-footer/pkg/model"
)

// badge is one entry of a badge row read from a widget blob.
type badge struct {
	Label string
	Href  string
	Image string
	Icon  string
}

func blobString(blob model.Blob, key string) string {
	if blob == nil {
		return ""
	}
	switch v := blob[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

func blobStringOr(blob model.Blob, key, fallback string) string {
	if v := blobString(blob, key); v != "" {
		return v
	}
	return fallback
}

// blobBadges reads the "items" list. Entries that are not objects are
// skipped; plain strings become label-only badges.
func blobBadges(blob model.Blob) []badge {
	if blob == nil {
		return nil
	}
	raw, ok := blob["items"].([]any)
	if !ok {
		return nil
	}
	out := make([]badge, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			if label := strings.TrimSpace(v); label != "" {
				out = append(out, badge{Label: label})
			}
		case map[string]any:
			item := model.Blob(v)
			out = append(out, badge{
				Label: blobString(item, "label"),
				Href:  blobString(item, "href"),
				Image: blobString(item, "image"),
				Icon:  blobString(item, "icon"),
			})
		case model.Blob:
			out = append(out, badge{
				Label: blobString(v, "label"),
				Href:  blobString(v, "href"),
				Image: blobString(v, "image"),
				Icon:  blobString(v, "icon"),
			})
		}
	}
	return out
}
