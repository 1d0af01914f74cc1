package scaffold

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-footer/pkg/content"
	"github.com/goliatone/go-footer/pkg/model"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int
	confirm   []bool
	textAreas []string
	infos     []string

	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
	textPos    int

	abortOnConfirm int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.abortOnConfirm > 0 && s.confirmPos+1 == s.abortOnConfirm {
		return false, ErrAborted
	}
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

// helpAndContact scripts two sections: "Help" with a FAQ link and payment
// systems, "Contact" with an icon link, a free-form entry and the mobile grid.
func helpAndContact() *stubDriver {
	return &stubDriver{
		confirm: []bool{
			true,        // add section
			true, false, // Help: one item
			true,              // add section
			true, true, false, // Contact: two items
			false, // no more sections
		},
		inputs: []string{
			"Help", "FAQ", "/faq",
			"Contact", "Phone", "<b>0800</b>", "tel:0800",
			"/api/newsletter",
		},
		multiIdx:  [][]int{{0}, {2, 3}},
		selectIdx: []int{0, 1, 2},
		textAreas: []string{"<p>Mon-Fri</p>", "  <p>© Store</p> "},
	}
}

func TestScaffold_BuildsDocument(t *testing.T) {
	driver := helpAndContact()
	doc, err := Scaffold(context.Background(), driver)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	want := Document{
		Copyright:     "<p>© Store</p>",
		Newsletter:    map[string]any{"action": "/api/newsletter"},
		PaymentSystem: map[string]any{"items": []any{}},
		Sections: []Section{
			{
				Label:              "Help",
				Children:           []Item{{Kind: "link", Label: "FAQ", Href: "/faq"}},
				ShowPaymentSystems: true,
			},
			{
				Label: "Contact",
				Children: []Item{
					{Kind: "icon", Icon: "Phone", Label: "<b>0800</b>", Href: "tel:0800"},
					{Kind: "advanced", Text: "<p>Mon-Fri</p>"},
				},
				ShowSocialNetworks: true,
				ShowGrid:           true,
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected a greeting, got %v", driver.infos)
	}
}

func TestDocument_YAMLRoundTripsThroughContentDecoder(t *testing.T) {
	doc, err := Scaffold(context.Background(), helpAndContact())
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	raw, err := doc.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	parsed, err := content.NewDocument(content.SourceFromFile("footer.yaml"), raw)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	props, err := parsed.Props(content.PolicyTrusted)
	if err != nil {
		t.Fatalf("props: %v", err)
	}

	if len(props.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(props.Sections))
	}
	kinds := []model.ItemKind{
		props.Sections[0].Children[0].Variant(),
		props.Sections[1].Children[0].Variant(),
		props.Sections[1].Children[1].Variant(),
	}
	if diff := cmp.Diff([]model.ItemKind{model.ItemLink, model.ItemIcon, model.ItemAdvanced}, kinds); diff != "" {
		t.Fatalf("item kinds mismatch (-want +got):\n%s", diff)
	}
	if !props.Sections[0].ShowPaymentSystems || !props.Sections[1].ShowGrid {
		t.Fatalf("section flags lost: %+v", props.Sections)
	}
	if props.Copyright != "<p>© Store</p>" {
		t.Fatalf("copyright lost: %q", props.Copyright)
	}
}

func TestScaffold_EmptyDocumentIsValid(t *testing.T) {
	driver := &stubDriver{confirm: []bool{false}, inputs: []string{""}, textAreas: []string{""}}
	doc, err := Scaffold(context.Background(), driver)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if _, err := doc.YAML(); err != nil {
		t.Fatalf("empty document should encode: %v", err)
	}
}

func TestDocument_YAMLWritesVariantFieldsOnly(t *testing.T) {
	doc := Document{Sections: []Section{{
		Label: "Mixed",
		Children: []Item{
			{Kind: "link", Label: "FAQ", Href: "/faq", Text: "stray"},
			{Kind: "advanced", Text: ""},
			{Kind: "icon", Icon: "Phone", Label: "call", Href: "tel:1", Text: "stray"},
		},
	}}}
	raw, err := doc.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if out := string(raw); strings.Contains(out, "kind") || strings.Contains(out, "stray") {
		t.Fatalf("unexpected fields in output:\n%s", out)
	}

	parsed, err := content.NewDocument(content.SourceFromFile("footer.yaml"), raw)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	props, err := parsed.Props(content.PolicyTrusted)
	if err != nil {
		t.Fatalf("props: %v", err)
	}
	var kinds []model.ItemKind
	for _, item := range props.Sections[0].Children {
		kinds = append(kinds, item.Variant())
	}
	want := []model.ItemKind{model.ItemLink, model.ItemAdvanced, model.ItemIcon}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("item kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScaffold_PropagatesAbort(t *testing.T) {
	driver := helpAndContact()
	driver.abortOnConfirm = 2
	_, err := Scaffold(context.Background(), driver)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestScaffold_RequiresSectionTitle(t *testing.T) {
	driver := &stubDriver{confirm: []bool{true}, inputs: []string{"  "}}
	if _, err := Scaffold(context.Background(), driver); err == nil {
		t.Fatalf("expected validation error for empty title")
	}
}

func TestSelectHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := indexOf(options, "c"); got != 2 {
		t.Fatalf("indexOf = %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices(options, []int{1, 7})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}
