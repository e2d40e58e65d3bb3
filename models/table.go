package models

import (
	"context"
	"database/sql"
	"errors"

	trmgorm "github.com/avito-tech/go-transaction-manager/drivers/gorm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"gorm.io/gorm"
)

// snapshotTx keeps every statement of a read on the snapshot taken by its
// first statement.
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// ReadSnapshot is the transaction manager setting for reads that combine
// several statements, such as a scope check followed by a counted page.
var ReadSnapshot = trmgorm.MustSettings(settings.Must(), trmgorm.WithTxOptions(snapshotTx))

// table holds the CRUD statements shared by the entity repositories.
// Every statement runs on the transaction found in ctx, or on db when there is none.
type table[T any] struct {
	db     *gorm.DB
	getter *trmgorm.CtxGetter
	entity string
}

func newTable[T any](db *gorm.DB, entity string) table[T] {
	return table[T]{db: db, getter: trmgorm.DefaultCtxGetter, entity: entity}
}

func (t table[T]) conn(ctx context.Context) *gorm.DB {
	return t.getter.DefaultTrOrDB(ctx, t.db).WithContext(ctx)
}

func (t table[T]) create(ctx context.Context, row *T) error {
	return translateError(t.entity+".create", t.entity, t.conn(ctx).Create(row).Error)
}

func (t table[T]) get(ctx context.Context, id uint) (*T, error) {
	var row T
	err := t.conn(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound(t.entity, id)
	}
	if err != nil {
		return nil, translateError(t.entity+".get", t.entity, err)
	}
	return &row, nil
}

func (t table[T]) exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := t.conn(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(t.entity+".exists", t.entity, err)
	}
	return count > 0, nil
}

// update writes only the given columns and returns the stored row.
func (t table[T]) update(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return t.get(ctx, id)
	}

	res := t.conn(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, translateError(t.entity+".update", t.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, NotFound(t.entity, id)
	}

	return t.get(ctx, id)
}

func (t table[T]) delete(ctx context.Context, id uint) error {
	res := t.conn(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translateError(t.entity+".delete", t.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFound(t.entity, id)
	}
	return nil
}

// list counts and reads one page inside a single repeatable read transaction
// so that the total and the page describe the same snapshot. Inside a managed
// transaction it runs on a savepoint and inherits that transaction's isolation.
func (t table[T]) list(ctx context.Context, page Page, filter, order func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var (
		rows  []T
		total int64
	)

	err := t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(new(T)).Scopes(filter).Session(&gorm.Session{})

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.Scopes(order, page.Paginate).Find(&rows).Error
	}, snapshotTx)
	if err != nil {
		return nil, 0, translateError(t.entity+".list", t.entity, err)
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, total, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func noFilter(db *gorm.DB) *gorm.DB {
	return db
}
