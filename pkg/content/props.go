package content

import "github.com/goliatone/go-footer/pkg/model"

// PropsFromValues maps decoded content values onto model.Props. Unknown keys
// and values of the wrong type are ignored; items are classified by shape.
func PropsFromValues(values map[string]any, policy Policy) model.Props {
	props := model.Props{
		PaymentSystem:  blobValue(values["paymentSystem"]),
		SecuritySystem: blobValue(values["securitySystem"]),
		SocialNetwork:  blobValue(values["socialNetwork"]),
		Newsletter:     blobValue(values["newsletter"]),
	}
	if copyright, ok := values["copyright"].(string); ok {
		props.Copyright = policy.apply(copyright)
	}

	if rawSections, ok := values["sections"].([]any); ok {
		props.Sections = make([]model.Section, 0, len(rawSections))
		for _, raw := range rawSections {
			fields, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			props.Sections = append(props.Sections, sectionValue(fields, policy))
		}
	}

	if fields, ok := values["attribution"].(map[string]any); ok {
		props.Attribution = &model.Attribution{
			Team:           stringValue(fields["team"]),
			PoweredByHref:  stringValue(fields["poweredByHref"]),
			PoweredByLabel: stringValue(fields["poweredByLabel"]),
		}
	}

	return props
}

func sectionValue(fields map[string]any, policy Policy) model.Section {
	section := model.Section{
		Label:               stringValue(fields["label"]),
		ShowPaymentSystems:  boolValue(fields["showPaymentSystems"]),
		ShowSecuritySystems: boolValue(fields["showSecuritySystems"]),
		ShowSocialNetworks:  boolValue(fields["showSocialNetworks"]),
		ShowGrid:            boolValue(fields["showGrid"]),
	}
	children, _ := fields["children"].([]any)
	section.Children = make([]model.Item, 0, len(children))
	for _, raw := range children {
		itemFields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		section.Children = append(section.Children, itemValue(itemFields, policy))
	}
	return section
}

// ItemFromFields builds one item from its untyped shape.
func ItemFromFields(fields map[string]any, policy Policy) model.Item {
	return itemValue(fields, policy)
}

func itemValue(fields map[string]any, policy Policy) model.Item {
	href := stringValue(fields["href"])
	switch model.Classify(fields) {
	case model.ItemAdvanced:
		return model.AdvancedItem(policy.apply(stringValue(fields["text"])))
	case model.ItemIcon:
		return model.IconLinkItem(stringValue(fields["icon"]), policy.apply(stringValue(fields["label"])), href)
	default:
		return model.LinkItem(stringValue(fields["label"]), href)
	}
}

func blobValue(v any) model.Blob {
	if m, ok := v.(map[string]any); ok {
		return model.Blob(m)
	}
	return nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}
