package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-footer/pkg/content"
)

// Document is the content document produced by Scaffold. Field tags match the
// keys the content decoder reads.
type Document struct {
	Copyright     string         `yaml:"copyright,omitempty"`
	Newsletter    map[string]any `yaml:"newsletter,omitempty"`
	PaymentSystem map[string]any `yaml:"paymentSystem,omitempty"`
	Sections      []Section      `yaml:"sections"`
}

// Section mirrors one content section.
type Section struct {
	Label               string `yaml:"label"`
	Children            []Item `yaml:"children"`
	ShowPaymentSystems  bool   `yaml:"showPaymentSystems,omitempty"`
	ShowSecuritySystems bool   `yaml:"showSecuritySystems,omitempty"`
	ShowSocialNetworks  bool   `yaml:"showSocialNetworks,omitempty"`
	ShowGrid            bool   `yaml:"showGrid,omitempty"`
}

// Item mirrors one section entry. Kind records the prompt choice and is not
// written: the decoder infers the variant from which fields are present.
type Item struct {
	Kind  string `yaml:"-"`
	Label string `yaml:"label,omitempty"`
	Href  string `yaml:"href,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
	Text  string `yaml:"text,omitempty"`
}

type linkEntry struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type iconEntry struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type advancedEntry struct {
	Text string `yaml:"text"`
}

// MarshalYAML writes only the fields of the item's variant. The shape field
// (text or icon) is always present, even when empty, so the variant survives
// decoding.
func (i Item) MarshalYAML() (any, error) {
	switch i.Kind {
	case "advanced":
		return advancedEntry{Text: i.Text}, nil
	case "icon":
		return iconEntry{Icon: i.Icon, Label: i.Label, Href: i.Href}, nil
	default:
		return linkEntry{Label: i.Label, Href: i.Href}, nil
	}
}

var sectionFlags = []string{
	"Payment systems",
	"Security seals",
	"Social networks",
	"Two-column list on mobile",
}

var itemKinds = []string{
	"Link",
	"Link with icon",
	"Free-form HTML",
}

// Scaffold asks for sections, items and the copyright line, returning the
// resulting document.
func Scaffold(ctx context.Context, driver PromptDriver) (Document, error) {
	if driver == nil {
		return Document{}, errors.New("scaffold: prompt driver is nil")
	}
	if err := driver.Info(ctx, "Footer content scaffold"); err != nil {
		return Document{}, err
	}

	var doc Document
	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Add a section?",
			Default: len(doc.Sections) == 0,
		})
		if err != nil {
			return Document{}, err
		}
		if !more {
			break
		}
		section, err := askSection(ctx, driver)
		if err != nil {
			return Document{}, err
		}
		doc.Sections = append(doc.Sections, section)
	}

	copyright, err := driver.TextArea(ctx, TextAreaConfig{
		Message: "Copyright (HTML allowed)",
		Help:    "Rendered in the bottom bar.",
	})
	if err != nil {
		return Document{}, err
	}
	doc.Copyright = strings.TrimSpace(copyright)

	action, err := driver.Input(ctx, InputConfig{
		Message: "Newsletter form action (empty to skip)",
	})
	if err != nil {
		return Document{}, err
	}
	if action = strings.TrimSpace(action); action != "" {
		doc.Newsletter = map[string]any{"action": action}
	}

	for _, section := range doc.Sections {
		if section.ShowPaymentSystems {
			doc.PaymentSystem = map[string]any{"items": []any{}}
			break
		}
	}
	return doc, nil
}

func askSection(ctx context.Context, driver PromptDriver) (Section, error) {
	label, err := driver.Input(ctx, InputConfig{
		Message:   "Section title",
		Validator: required("section title"),
	})
	if err != nil {
		return Section{}, err
	}
	section := Section{Label: strings.TrimSpace(label), Children: []Item{}}

	flags, err := driver.MultiSelect(ctx, SelectConfig{
		Message: fmt.Sprintf("Extras for %q", section.Label),
		Options: sectionFlags,
	})
	if err != nil {
		return Section{}, err
	}
	for _, idx := range flags {
		switch idx {
		case 0:
			section.ShowPaymentSystems = true
		case 1:
			section.ShowSecuritySystems = true
		case 2:
			section.ShowSocialNetworks = true
		case 3:
			section.ShowGrid = true
		}
	}

	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add an item to %q?", section.Label),
			Default: len(section.Children) == 0,
		})
		if err != nil {
			return Section{}, err
		}
		if !more {
			return section, nil
		}
		item, err := askItem(ctx, driver)
		if err != nil {
			return Section{}, err
		}
		section.Children = append(section.Children, item)
	}
}

func askItem(ctx context.Context, driver PromptDriver) (Item, error) {
	kind, err := driver.Select(ctx, SelectConfig{
		Message: "Item type",
		Options: itemKinds,
	})
	if err != nil {
		return Item{}, err
	}

	switch kind {
	case 2:
		text, err := driver.TextArea(ctx, TextAreaConfig{Message: "HTML"})
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: "advanced", Text: text}, nil
	case 1:
		icon, err := driver.Input(ctx, InputConfig{
			Message:   "Icon id",
			Help:      "Symbol id in the icon sprite, e.g. Phone.",
			Validator: required("icon id"),
		})
		if err != nil {
			return Item{}, err
		}
		label, href, err := askLink(ctx, driver, "Label (HTML allowed)")
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: "icon", Icon: strings.TrimSpace(icon), Label: label, Href: href}, nil
	default:
		label, href, err := askLink(ctx, driver, "Label")
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: "link", Label: label, Href: href}, nil
	}
}

func askLink(ctx context.Context, driver PromptDriver, labelMessage string) (string, string, error) {
	label, err := driver.Input(ctx, InputConfig{Message: labelMessage})
	if err != nil {
		return "", "", err
	}
	href, err := driver.Input(ctx, InputConfig{Message: "Link"})
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(label), strings.TrimSpace(href), nil
}

func required(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// YAML encodes doc and checks the result against the content schema.
func (d Document) YAML() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("scaffold: encode yaml: %w", err)
	}
	if err := content.Validate(out); err != nil {
		return nil, fmt.Errorf("scaffold: %w", err)
	}
	return out, nil
}
