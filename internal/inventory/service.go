package inventory

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

const dateLayout = "2006-01-02"

const defaultLogLimit = 50

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service covers ingredient tracking: the item catalog, the signed
// movement log, and reorder suggestions for anything below its minimum.
type Service interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	Get(ctx context.Context, id int64) (*models.InventoryItem, error)
	Create(ctx context.Context, input ItemInput) (int64, error)
	Update(ctx context.Context, id int64, input ItemInput) error
	Delete(ctx context.Context, id int64) error
	Adjust(ctx context.Context, input AdjustInput) (*models.InventoryItem, error)
	Log(ctx context.Context, ingredientID int64, limit int) ([]models.InventoryAdjustment, error)
	Suggestions(ctx context.Context) ([]Suggestion, error)
}

// ItemInput carries the editable fields of an ingredient. CurrentQty is
// intentionally absent; stock moves only through Adjust.
type ItemInput struct {
	Name     string
	Category string
	Unit     string
	MinQty   float64
}

// AdjustInput is one signed stock movement. Positive Change is a
// delivery, negative is usage or waste.
type AdjustInput struct {
	IngredientID int64
	Date         string
	Change       float64
	Note         string
}

// Suggestion pairs a low-stock ingredient with the amount needed to get
// back to its minimum level.
type Suggestion struct {
	Item       models.InventoryItem `json:"item"`
	ReorderQty float64              `json:"reorder_qty"`
}

type service struct {
	repo Repository
	tx   txRunner
}

func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "inventory repository required")
	}
	if tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing inventory")
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching inventory item")
	}
	if item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}
	return item, nil
}

func validateItemInput(input ItemInput) (ItemInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Unit = strings.TrimSpace(input.Unit)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if input.Unit == "" {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "unit must not be empty")
	}
	if input.MinQty < 0 {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "min_qty must be non-negative")
	}
	return input, nil
}

func (s *service) Create(ctx context.Context, input ItemInput) (int64, error) {
	input, err := validateItemInput(input)
	if err != nil {
		return 0, err
	}

	item := &models.InventoryItem{
		Name:     input.Name,
		Category: input.Category,
		Unit:     input.Unit,
		MinQty:   input.MinQty,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating inventory item")
	}
	return item.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input ItemInput) error {
	input, err := validateItemInput(input)
	if err != nil {
		return err
	}

	affected, err := s.repo.Update(ctx, id, models.InventoryItem{
		Name:     input.Name,
		Category: input.Category,
		Unit:     input.Unit,
		MinQty:   input.MinQty,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating inventory item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting inventory item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
	}
	return nil
}

// Adjust appends one movement log entry and shifts the item's stock
// level by the same delta, atomically. A zero change is rejected since
// it would produce a log row that moved nothing.
func (s *service) Adjust(ctx context.Context, input AdjustInput) (*models.InventoryItem, error) {
	if input.Change == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "change must be non-zero")
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		affected, err := repo.AdjustQuantity(ctx, input.IngredientID, input.Change)
		if err != nil {
			return err
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
		return repo.AppendLog(ctx, &models.InventoryAdjustment{
			IngredientID: input.IngredientID,
			Date:         input.Date,
			Change:       input.Change,
			Note:         strings.TrimSpace(input.Note),
		})
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "adjusting inventory")
	}
	return s.Get(ctx, input.IngredientID)
}

func (s *service) Log(ctx context.Context, ingredientID int64, limit int) ([]models.InventoryAdjustment, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	entries, err := s.repo.ListLog(ctx, ingredientID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing inventory log")
	}
	if entries == nil {
		entries = []models.InventoryAdjustment{}
	}
	return entries, nil
}

// Suggestions lists ingredients sitting below their minimum, each with
// the shortfall needed to reach it again.
func (s *service) Suggestions(ctx context.Context) ([]Suggestion, error) {
	items, err := s.repo.BelowMinimum(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing low stock")
	}

	suggestions := make([]Suggestion, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, Suggestion{
			Item:       item,
			ReorderQty: item.MinQty - item.CurrentQty,
		})
	}
	return suggestions, nil
}
