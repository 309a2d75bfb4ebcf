package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(item models.Item) (models.Item, error) {
	query := `INSERT INTO inventory (item_name, item_description, item_category, item_quantity, low_stock_threshold, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING item_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Any caller-supplied id is ignored; the database assigns a fresh one.
	err := r.db.QueryRowContext(ctx, query, item.Name, item.Description, item.Category,
		item.Quantity, item.Threshold, item.Barcode, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	return item, err
}

func (r *PostgresItemRepository) GetAll() ([]models.Item, error) {
	query := `SELECT item_id, item_name, item_description, item_category, item_quantity, low_stock_threshold, barcode
		FROM inventory ORDER BY item_name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var i models.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Quantity, &i.Threshold, &i.Barcode); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) GetByID(id int64) (models.Item, error) {
	query := `SELECT item_id, item_name, item_description, item_category, item_quantity, low_stock_threshold, barcode
		FROM inventory WHERE item_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var i models.Item
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Quantity, &i.Threshold, &i.Barcode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return i, err
}

func (r *PostgresItemRepository) Update(item models.Item) (models.Item, error) {
	query := `UPDATE inventory SET item_name = $1, item_description = $2, item_category = $3,
		item_quantity = $4, low_stock_threshold = $5, barcode = $6, updated_at = $7 WHERE item_id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Category,
		item.Quantity, item.Threshold, item.Barcode, item.UpdatedAt, item.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}

// UpdateQuantity patches only the quantity column. The store accepts any
// int it is given; callers reject negative values before reaching here.
func (r *PostgresItemRepository) UpdateQuantity(id int64, quantity int) (models.Item, error) {
	query := `
		UPDATE inventory
		SET item_quantity = $1, updated_at = $2
		WHERE item_id = $3
		RETURNING item_id, item_name, item_description, item_category, item_quantity, low_stock_threshold, barcode, created_at, updated_at
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var i models.Item
	err := r.db.QueryRowContext(ctx, query, quantity, time.Now().UTC().Format(time.RFC3339), id).
		Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Quantity, &i.Threshold, &i.Barcode, &i.CreatedAt, &i.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return i, err
}

func (r *PostgresItemRepository) Delete(id int64) error {
	query := `DELETE FROM inventory WHERE item_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// GetLowStock lists items with quantity at or below their threshold,
// lowest quantity first, so out-of-stock items lead the list.
func (r *PostgresItemRepository) GetLowStock() ([]models.Item, error) {
	query := `SELECT item_id, item_name, item_description, item_category, item_quantity, low_stock_threshold, barcode
		FROM inventory WHERE item_quantity <= low_stock_threshold ORDER BY item_quantity`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var i models.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Category, &i.Quantity, &i.Threshold, &i.Barcode); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *PostgresItemRepository) Stats() (InventoryStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s InventoryStats

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&s.TotalItems); err != nil {
		return InventoryStats{}, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory WHERE item_quantity <= low_stock_threshold AND item_quantity > 0`).
		Scan(&s.LowStock); err != nil {
		return InventoryStats{}, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory WHERE item_quantity = 0`).Scan(&s.CriticalStock); err != nil {
		return InventoryStats{}, err
	}

	return s, nil
}
