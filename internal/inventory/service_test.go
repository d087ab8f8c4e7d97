package inventory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	items := `
CREATE TABLE IF NOT EXISTS inventory_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT,
  unit TEXT NOT NULL,
  current_qty REAL NOT NULL DEFAULT 0,
  min_qty REAL NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	log := `
CREATE TABLE IF NOT EXISTS inventory_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ingredient_id INTEGER NOT NULL,
  date TEXT NOT NULL,
  change REAL NOT NULL,
  note TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(items).Error)
	require.NoError(t, db.Exec(log).Error)
	return db
}

func newInventoryService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db := setupInventoryTestDB(t)
	svc, err := NewService(NewRepository(db), gormTxRunner{db: db})
	require.NoError(t, err)
	return svc, db
}

func TestCreateAndUpdateItem(t *testing.T) {
	svc, _ := newInventoryService(t)

	id, err := svc.Create(context.Background(), ItemInput{Name: " Flour ", Unit: "kg", MinQty: 5})
	require.NoError(t, err)

	item, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Flour", item.Name)
	assert.Zero(t, item.CurrentQty, "stock starts at zero and only moves via adjustments")

	require.NoError(t, svc.Update(context.Background(), id, ItemInput{Name: "Flour T55", Unit: "kg", MinQty: 8}))
	item, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Flour T55", item.Name)
	assert.InDelta(t, 8.0, item.MinQty, 1e-9)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newInventoryService(t)

	_, err := svc.Create(context.Background(), ItemInput{Name: " ", Unit: "kg"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(context.Background(), ItemInput{Name: "Flour", Unit: "kg", MinQty: -1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestAdjustMovesStockAndLogsAtomically(t *testing.T) {
	svc, db := newInventoryService(t)

	id, err := svc.Create(context.Background(), ItemInput{Name: "Flour", Unit: "kg", MinQty: 5})
	require.NoError(t, err)

	item, err := svc.Adjust(context.Background(), AdjustInput{
		IngredientID: id, Date: "2025-03-01", Change: 10, Note: "weekly delivery",
	})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, item.CurrentQty, 1e-9)

	item, err = svc.Adjust(context.Background(), AdjustInput{
		IngredientID: id, Date: "2025-03-02", Change: -3.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.5, item.CurrentQty, 1e-9)

	var count int64
	require.NoError(t, db.Model(&models.InventoryAdjustment{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	entries, err := svc.Log(context.Background(), id, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.InDelta(t, -3.5, entries[0].Change, 1e-9, "log lists newest first")
}

func TestAdjustUnknownItemLeavesNoLogEntry(t *testing.T) {
	svc, db := newInventoryService(t)

	_, err := svc.Adjust(context.Background(), AdjustInput{
		IngredientID: 404, Date: "2025-03-01", Change: 5,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	var count int64
	require.NoError(t, db.Model(&models.InventoryAdjustment{}).Count(&count).Error)
	assert.Zero(t, count, "the rolled-back transaction must not leave a log row")
}

func TestAdjustRejectsZeroChangeAndBadDate(t *testing.T) {
	svc, _ := newInventoryService(t)

	_, err := svc.Adjust(context.Background(), AdjustInput{IngredientID: 1, Date: "2025-03-01", Change: 0})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Adjust(context.Background(), AdjustInput{IngredientID: 1, Date: "03/01/2025", Change: 1})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSuggestionsListShortfalls(t *testing.T) {
	svc, _ := newInventoryService(t)

	flour, err := svc.Create(context.Background(), ItemInput{Name: "Flour", Unit: "kg", MinQty: 5})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ItemInput{Name: "Salt", Unit: "kg", MinQty: 0})
	require.NoError(t, err)

	_, err = svc.Adjust(context.Background(), AdjustInput{IngredientID: flour, Date: "2025-03-01", Change: 2})
	require.NoError(t, err)

	suggestions, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, suggestions, 1, "items at or above minimum must not be suggested")
	assert.Equal(t, "Flour", suggestions[0].Item.Name)
	assert.InDelta(t, 3.0, suggestions[0].ReorderQty, 1e-9)
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newInventoryService(t)

	id, err := svc.Create(context.Background(), ItemInput{Name: "Flour", Unit: "kg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id))
	err = svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
