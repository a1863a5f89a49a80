package services

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// SearchParts filters the parts catalog the way the main table does: an empty key
// keeps everything, otherwise the name or the id must contain the key.
func (s *InventoryService) SearchParts(key string) []*entities.Part {
	return FilterParts(s.repo.AllParts(), key)
}

// SearchProducts filters the products catalog by name or id
func (s *InventoryService) SearchProducts(key string) []*entities.Product {
	return FilterProducts(s.repo.AllProducts(), key)
}

// FilterParts keeps the parts whose name (ignoring case) or id contains key
func FilterParts(parts []*entities.Part, key string) []*entities.Part {
	if key == "" {
		return parts
	}
	return lo.Filter(parts, func(p *entities.Part, _ int) bool {
		return matches(key, p.ID(), p.Name())
	})
}

// FilterProducts keeps the products whose name (ignoring case) or id contains key
func FilterProducts(products []*entities.Product, key string) []*entities.Product {
	if key == "" {
		return products
	}
	return lo.Filter(products, func(p *entities.Product, _ int) bool {
		return matches(key, p.ID(), p.Name())
	})
}

func matches(key string, id int, name string) bool {
	filter := strings.ToLower(key)
	return strings.Contains(strings.ToLower(name), filter) ||
		strings.Contains(strconv.Itoa(id), filter)
}
