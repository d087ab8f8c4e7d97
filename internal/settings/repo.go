package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
)

// settingsRowID pins the singleton row. Migrations seed it, but Get
// tolerates its absence for fresh test databases.
const settingsRowID = 1

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Get(ctx context.Context) (*models.AppSettings, error)
	Upsert(ctx context.Context, settings *models.AppSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Get(ctx context.Context) (*models.AppSettings, error) {
	var settings models.AppSettings
	err := r.db.WithContext(ctx).Where("id = ?", settingsRowID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) Upsert(ctx context.Context, settings *models.AppSettings) error {
	settings.ID = settingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
