// Package contracts проверяет JSON-документы (каталог, события) по JSON Schema.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

const schemaBaseURL = "https://shortlet.local/"

const (
	CatalogSchema             = "Catalog/1.0.0"
	BookingInquiryEventSchema = "BookingInquiryEvent/1.0.0"
)

var (
	compileOnce     sync.Once
	compiledSchemas map[string]*jsonschema.Schema
	compileErr      error
)

// load компилирует все схемы один раз. Ошибка компиляции возвращается при каждом вызове Validate.
func load() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchemas, compileErr = compileAll()
	})
	return compiledSchemas, compileErr
}

func compileAll() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(schemaBaseURL+path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	result := make(map[string]*jsonschema.Schema, len(paths))
	for _, path := range paths {
		schema, err := compiler.Compile(schemaBaseURL + path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		result[keyFromPath(path)] = schema
	}
	return result, nil
}

// keyFromPath: "schemas/events/booking-inquiry/v1.json" -> "BookingInquiryEvent/1.0.0",
// "schemas/catalog/v1.json" -> "Catalog/1.0.0"
func keyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return ""
	}
	version := strings.TrimPrefix(parts[len(parts)-1], "v") + ".0.0"

	suffix := ""
	nameParts := parts[:len(parts)-1]
	if nameParts[0] == "events" {
		nameParts = nameParts[1:]
		suffix = "Event"
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, part := range nameParts {
		for _, word := range strings.Split(part, "-") {
			name.WriteString(caser.String(word))
		}
	}
	name.WriteString(suffix)

	return name.String() + "/" + version
}

// Validate проверяет тело документа по схеме с ключом вида "Name/1.0.0"
func Validate(schemaKey string, body []byte) error {
	schemas, err := load()
	if err != nil {
		return err
	}
	schema, ok := schemas[schemaKey]
	if !ok {
		return fmt.Errorf("schema %q not found", schemaKey)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("document is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
