package service

import (
	"sort"

	"github.com/kakeibo-dev/kakeibo-core/internal/domain"
)

// CategoryService handles category tree construction
type CategoryService struct{}

// NewCategoryService creates a new CategoryService
func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

// BuildTree converts a flat category list into a two-level tree: top-level
// categories become roots and categories referencing them become direct
// children. Only one level is nested here; deeper hierarchies are handled by
// the aggregation rollup. Roots and children are sorted by Order, ties keep
// input order.
func (s *CategoryService) BuildTree(categories []*domain.Category) []*domain.CategoryNode {
	roots := make([]*domain.CategoryNode, 0)
	for _, c := range categories {
		if c.ParentID != nil {
			continue
		}
		node := &domain.CategoryNode{
			Category: c,
			Children: make([]*domain.CategoryNode, 0),
		}
		for _, child := range categories {
			if child.ParentID != nil && *child.ParentID == c.ID {
				node.Children = append(node.Children, &domain.CategoryNode{
					Category: child,
					Children: make([]*domain.CategoryNode, 0),
				})
			}
		}
		sortNodesByOrder(node.Children)
		roots = append(roots, node)
	}
	sortNodesByOrder(roots)
	return roots
}

func sortNodesByOrder(nodes []*domain.CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Category.Order < nodes[j].Category.Order
	})
}
