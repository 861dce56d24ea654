package embedded

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"shortlet-service/internal/contracts"
	"shortlet-service/internal/core/domain"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// CatalogSource читает каталог из JSON-документа, по умолчанию встроенного в бинарник
type CatalogSource struct {
	raw []byte
}

func NewCatalogSource() *CatalogSource {
	return &CatalogSource{raw: defaultCatalog}
}

// NewCatalogSourceFromBytes нужен для тестов и для каталога из файла
func NewCatalogSourceFromBytes(raw []byte) *CatalogSource {
	return &CatalogSource{raw: raw}
}

func (s *CatalogSource) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := contracts.Validate(contracts.CatalogSchema, s.raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(s.raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return domain.NewCatalog(doc.toDomain())
}
