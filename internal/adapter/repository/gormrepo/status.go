package gormrepo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// casStatus moves the row keyed by keyCol=key to `to` only while its status
// is one of `from`. When nothing was updated the row is read back: a missing
// row reports notFound, a row already at `to` succeeds (MySQL counts an
// identical write as zero affected rows), anything else is conflict.
func casStatus[S ~string](ctx context.Context, db *gorm.DB, model schema.Tabler, keyCol, key string, from []S, to S, notFound, conflict error) error {
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	res := db.WithContext(ctx).Model(model).
		Where(keyCol+" = ? AND status IN ?", key, allowed).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("%s: update status: %w", model.TableName(), res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	current, err := currentStatus(ctx, db, model, keyCol, key)
	if err != nil {
		return err
	}
	switch {
	case current == "":
		return notFound
	case current == string(to) && slices.Contains(allowed, current):
		return nil
	default:
		return conflict
	}
}

// deleteIfStatus removes the row only while it carries the given status.
func deleteIfStatus(ctx context.Context, db *gorm.DB, model schema.Tabler, keyCol, key, status string, notFound, conflict error) error {
	res := db.WithContext(ctx).
		Where(keyCol+" = ? AND status = ?", key, status).
		Delete(model)
	if res.Error != nil {
		return fmt.Errorf("%s: conditional delete: %w", model.TableName(), res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	current, err := currentStatus(ctx, db, model, keyCol, key)
	if err != nil {
		return err
	}
	if current == "" {
		return notFound
	}
	return conflict
}

// deleteByKey is the unconditional delete used by compensations; deleting a
// missing row is not an error.
func deleteByKey(ctx context.Context, db *gorm.DB, model schema.Tabler, keyCol, key string) error {
	if err := db.WithContext(ctx).Where(keyCol+" = ?", key).Delete(model).Error; err != nil {
		return fmt.Errorf("%s: delete: %w", model.TableName(), err)
	}
	return nil
}

// currentStatus returns "" when the row does not exist.
func currentStatus(ctx context.Context, db *gorm.DB, model schema.Tabler, keyCol, key string) (string, error) {
	var statuses []string
	err := db.WithContext(ctx).Model(model).
		Where(keyCol+" = ?", key).
		Limit(1).
		Pluck("status", &statuses).Error
	if err != nil {
		return "", fmt.Errorf("%s: read status: %w", model.TableName(), err)
	}
	if len(statuses) == 0 {
		return "", nil
	}
	return statuses[0], nil
}
