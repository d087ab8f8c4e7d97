package menu

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
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	menuItems := `
CREATE TABLE IF NOT EXISTS menu_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT,
  price REAL NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  image_path TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	recipes := `
CREATE TABLE IF NOT EXISTS recipes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  menu_item_id INTEGER NOT NULL,
  ingredient_id INTEGER NOT NULL,
  quantity REAL NOT NULL,
  unit TEXT NOT NULL
);`
	require.NoError(t, db.Exec(menuItems).Error)
	require.NoError(t, db.Exec(recipes).Error)
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, active bool) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{Name: name, Category: "main", Price: price, Active: active}
	require.NoError(t, db.Create(item).Error)
	if !active {
		require.NoError(t, db.Model(item).Update("active", false).Error)
	}
	return item
}

func TestRepositoryList_filtersInactiveByDefault(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	seedMenuItem(t, db, "Margherita", 10.0, true)
	seedMenuItem(t, db, "Seasonal Special", 15.0, false)

	active, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Margherita", active[0].Name)

	all, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2, "inactive listing must be a superset of the active one")
}

func TestRepositoryGet_missingReturnsNil(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	item, err := repo.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestRepositoryUpdate_reportsRowsAffected(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	item := seedMenuItem(t, db, "Margherita", 10.0, true)

	affected, err := repo.Update(context.Background(), item.ID, models.MenuItem{
		Name: "Margherita DOP", Category: "main", Price: 12.5,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.Update(context.Background(), 404, models.MenuItem{
		Name: "Ghost", Category: "main", Price: 1.0,
	})
	require.NoError(t, err)
	assert.Zero(t, affected)

	got, err := repo.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita DOP", got.Name)
	assert.InDelta(t, 12.5, got.Price, 1e-9)
}

func TestRepositorySetActive_togglesWithoutDeleting(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	item := seedMenuItem(t, db, "Margherita", 10.0, true)

	affected, err := repo.SetActive(context.Background(), item.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := repo.Get(context.Background(), item.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "deactivated items stay fetchable by id")
	assert.False(t, got.Active)
}

func TestRepositoryRecipes_scopedToMenuItem(t *testing.T) {
	db := setupMenuTestDB(t)
	repo := NewRepository(db)

	pizza := seedMenuItem(t, db, "Margherita", 10.0, true)
	soup := seedMenuItem(t, db, "Soup", 6.0, true)

	require.NoError(t, repo.CreateRecipe(context.Background(), &models.Recipe{
		MenuItemID: pizza.ID, IngredientID: 1, Quantity: 0.2, Unit: "kg",
	}))
	require.NoError(t, repo.CreateRecipe(context.Background(), &models.Recipe{
		MenuItemID: soup.ID, IngredientID: 2, Quantity: 0.5, Unit: "l",
	}))

	recipes, err := repo.ListRecipes(context.Background(), pizza.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.EqualValues(t, 1, recipes[0].IngredientID)

	affected, err := repo.DeleteRecipe(context.Background(), recipes[0].ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteRecipe(context.Background(), recipes[0].ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
