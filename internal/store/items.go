package store

import (
	"context"
	"fmt"

	"bmb-admin/internal/models"
)

// GetCatalogItems returns active services or menu items matching an optional
// name search, each annotated with how often it has been ordered. itemType
// selects the catalog table and must be one of models.ItemTypeService or
// models.ItemTypeMenu.
func (s *Store) GetCatalogItems(ctx context.Context, itemType, search string) ([]models.CatalogItem, error) {
	var table string
	switch itemType {
	case models.ItemTypeService:
		table = "services"
	case models.ItemTypeMenu:
		table = "menu"
	default:
		return nil, fmt.Errorf("unknown catalog type: %q", itemType)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.description, c.price, c.discount, c.final_price,
			c.category, c.photo, c.status, c.position,
			COUNT(oi.order_item_id) AS times_ordered,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity
		FROM %s c
		LEFT JOIN order_items oi ON c.id = oi.item_id AND oi.item_type = $1
		WHERE c.status = 'active'`, table)

	args := []interface{}{itemType}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND c.name ILIKE $%d", len(args))
	}

	query += " GROUP BY c.id ORDER BY c.position, c.name"

	items := []models.CatalogItem{}
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list %s items: %w", itemType, err)
	}

	return items, nil
}
