package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	schemaOnce sync.Once
	schemaDoc  *openapi3.Schema
)

// Schema describes the content document the editor produces. Titles match the
// editor labels. Widget blobs are open objects.
func Schema() *openapi3.Schema {
	schemaOnce.Do(func() {
		schemaDoc = buildSchema()
	})
	return schemaDoc
}

func buildSchema() *openapi3.Schema {
	item := openapi3.NewObjectSchema().
		WithProperty("label", titled(openapi3.NewStringSchema(), "Título")).
		WithProperty("href", openapi3.NewStringSchema()).
		WithProperty("icon", titled(openapi3.NewStringSchema(), "Ícone")).
		WithProperty("text", titled(openapi3.NewStringSchema(), "Texto"))

	section := openapi3.NewObjectSchema().
		WithProperty("label", titled(openapi3.NewStringSchema(), "Título")).
		WithProperty("children", openapi3.NewArraySchema().WithItems(item)).
		WithProperty("showPaymentSystems", titled(openapi3.NewBoolSchema(), "Mostrar formas de pagamento?")).
		WithProperty("showSecuritySystems", titled(openapi3.NewBoolSchema(), "Mostrar selos de segurança?")).
		WithProperty("showSocialNetworks", titled(openapi3.NewBoolSchema(), "Mostrar redes sociais?")).
		WithProperty("showGrid", titled(openapi3.NewBoolSchema(), "Mostrar o menu em 2 colunas?"))

	attribution := openapi3.NewObjectSchema().
		WithProperty("team", openapi3.NewStringSchema()).
		WithProperty("poweredByHref", openapi3.NewStringSchema()).
		WithProperty("poweredByLabel", openapi3.NewStringSchema())

	root := openapi3.NewObjectSchema().
		WithProperty("paymentSystem", titled(openapi3.NewObjectSchema(), "Formas de Pagamento")).
		WithProperty("securitySystem", titled(openapi3.NewObjectSchema(), "Selos de Segurança")).
		WithProperty("socialNetwork", titled(openapi3.NewObjectSchema(), "Redes Sociais")).
		WithProperty("newsletter", titled(openapi3.NewObjectSchema(), "Newsletter")).
		WithProperty("copyright", titled(openapi3.NewStringSchema(), "Copyright")).
		WithProperty("sections", titled(openapi3.NewArraySchema().WithItems(section), "Seções")).
		WithProperty("attribution", attribution)
	root.Title = "Footer"
	return root
}

func titled(s *openapi3.Schema, title string) *openapi3.Schema {
	s.Title = title
	return s
}

// SchemaJSON returns the indented JSON form of Schema().
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}

// Validate decodes raw and checks it against Schema().
func Validate(raw []byte) error {
	values, err := Decode(raw)
	if err != nil {
		return fmt.Errorf("content: validate: %w", err)
	}
	return ValidateValues(values)
}

// ValidateValues checks decoded values against Schema(), reporting every
// violation.
func ValidateValues(values map[string]any) error {
	if err := Schema().VisitJSON(values, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("content: validate: %w", err)
	}
	return nil
}
