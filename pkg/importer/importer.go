package importer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/fields"
)

const (
	orderExtensionKey       = "x-order"
	placeholderExtensionKey = "x-placeholder"
	widgetExtensionKey      = "x-widget"
)

// Result is the outcome of an import. Skipped lists property names that have
// no matching field kind, in the order they were encountered.
type Result struct {
	OperationID string
	Fields      fields.List
	Skipped     []string
}

// Option configures an import.
type Option func(*config)

type config struct {
	newID   fields.IDGenerator
	labeler func(string) string
}

// WithIDGenerator overrides the id generator (fields.NewID by default).
func WithIDGenerator(gen fields.IDGenerator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.newID = gen
		}
	}
}

// WithLabeler overrides how labels are derived for properties without a
// title.
func WithLabeler(fn func(string) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.labeler = fn
		}
	}
}

// Operations lists the operation ids declared in the document, sorted.
func Operations(ctx context.Context, data []byte) ([]string, error) {
	doc, err := load(ctx, data)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, entry := range operations(doc) {
		ids = append(ids, entry.id)
	}
	sort.Strings(ids)
	return ids, nil
}

// FromOpenAPI maps the request body of operationID to a field list.
func FromOpenAPI(ctx context.Context, data []byte, operationID string, options ...Option) (Result, error) {
	cfg := config{
		newID:   fields.NewID,
		labeler: DefaultLabeler,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	doc, err := load(ctx, data)
	if err != nil {
		return Result{}, err
	}

	var op *openapi3.Operation
	for _, entry := range operations(doc) {
		if entry.id == operationID {
			op = entry.op
			break
		}
	}
	if op == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	result := Result{OperationID: operationID, Fields: fields.List{}}
	for _, name := range orderedProperties(schema) {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		field, ok := mapProperty(name, prop.Value, cfg)
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		field.Required = required[name]
		next, err := result.Fields.Add(field)
		if err != nil {
			return Result{}, fmt.Errorf("importer: add %q: %w", name, err)
		}
		result.Fields = next
	}
	return result, nil
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("importer: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("importer: load document: %w", err)
	}
	return doc, nil
}

type operationEntry struct {
	id string
	op *openapi3.Operation
}

func operations(doc *openapi3.T) []operationEntry {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	var out []operationEntry
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out = append(out, operationEntry{id: id, op: op})
		}
	}
	return out
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// orderedProperties sorts by the x-order extension first (missing values go
// last) and by name after that.
func orderedProperties(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	rank := func(name string) float64 {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			return math.Inf(1)
		}
		if value, ok := toFloat(prop.Value.Extensions[orderExtensionKey]); ok {
			return value
		}
		return math.Inf(1)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

func mapProperty(name string, schema *openapi3.Schema, cfg config) (fields.Field, bool) {
	kind, options, ok := fieldKind(schema)
	if !ok {
		return fields.Field{}, false
	}
	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = cfg.labeler(name)
	}
	return fields.Field{
		ID:          cfg.newID(),
		Name:        name,
		Label:       label,
		Type:        kind,
		Placeholder: placeholder(schema),
		Options:     options,
	}, true
}

func fieldKind(schema *openapi3.Schema) (fields.FieldType, []string, bool) {
	if widget, ok := schema.Extensions[widgetExtensionKey].(string); ok {
		if kind, err := fields.ParseFieldType(widget); err == nil {
			var options []string
			if kind.IsChoice() {
				options = enumOptions(schema)
				if len(options) == 0 && schema.Items != nil && schema.Items.Value != nil {
					options = enumOptions(schema.Items.Value)
				}
			}
			return kind, options, true
		}
	}

	switch schemaType(schema) {
	case "string":
		if options := enumOptions(schema); len(options) > 0 {
			return fields.FieldTypeSelect, options, true
		}
		switch strings.ToLower(schema.Format) {
		case "email":
			return fields.FieldTypeEmail, nil, true
		case "date", "date-time":
			return fields.FieldTypeDate, nil, true
		case "tel", "phone":
			return fields.FieldTypePhone, nil, true
		case "textarea":
			return fields.FieldTypeTextArea, nil, true
		}
		return fields.FieldTypeText, nil, true
	case "integer", "number":
		if options := enumOptions(schema); len(options) > 0 {
			return fields.FieldTypeSelect, options, true
		}
		return fields.FieldTypeNumber, nil, true
	case "boolean":
		return fields.FieldTypeCheckbox, nil, true
	case "array":
		if schema.Items == nil || schema.Items.Value == nil {
			return "", nil, false
		}
		if options := enumOptions(schema.Items.Value); len(options) > 0 {
			return fields.FieldTypeMultiSelect, options, true
		}
		return "", nil, false
	default:
		return "", nil, false
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	for _, typ := range schema.Type.Slice() {
		if typ != "null" {
			return typ
		}
	}
	return ""
}

func enumOptions(schema *openapi3.Schema) []string {
	if len(schema.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(schema.Enum))
	for _, value := range schema.Enum {
		if value == nil {
			continue
		}
		out = append(out, fmt.Sprint(value))
	}
	return out
}

func placeholder(schema *openapi3.Schema) string {
	if value, ok := schema.Extensions[placeholderExtensionKey].(string); ok {
		return value
	}
	if value, ok := schema.Example.(string); ok {
		return value
	}
	return ""
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
