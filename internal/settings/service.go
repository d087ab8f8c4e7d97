package settings

import (
	"context"
	"strings"

	"github.com/seorin-lab/resto-backoffice/pkg/db/models"
	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
	"github.com/seorin-lab/resto-backoffice/pkg/i18n"
)

const defaultRestaurantName = "My Restaurant"

// Service manages the singleton application settings row and the
// localization surface built on top of it.
type Service interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	Update(ctx context.Context, input UpdateInput) (*models.AppSettings, error)
	SetLanguage(ctx context.Context, language string) (*models.AppSettings, error)
	Translations(ctx context.Context) (map[string]string, string, error)
}

// UpdateInput carries the editable branding fields. Language changes go
// through SetLanguage so they are validated against the supported set.
type UpdateInput struct {
	RestaurantName string
	LogoPath       *string
	PhotoPath      *string
	KakaoLink      string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings repository required")
	}
	return &service{repo: repo}, nil
}

// Get returns the current settings, falling back to defaults when the
// seed row is missing.
func (s *service) Get(ctx context.Context) (*models.AppSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading settings")
	}
	if current == nil {
		return &models.AppSettings{
			ID:             settingsRowID,
			RestaurantName: defaultRestaurantName,
			Language:       i18n.DefaultLanguage,
		}, nil
	}
	if current.Language == "" {
		current.Language = i18n.DefaultLanguage
	}
	return current, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.AppSettings, error) {
	name := strings.TrimSpace(input.RestaurantName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant_name must not be empty")
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.RestaurantName = name
	current.LogoPath = input.LogoPath
	current.PhotoPath = input.PhotoPath
	current.KakaoLink = strings.TrimSpace(input.KakaoLink)

	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving settings")
	}
	return current, nil
}

func (s *service) SetLanguage(ctx context.Context, language string) (*models.AppSettings, error) {
	if !i18n.Supported(language) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported language").
			WithDetails(i18n.Languages())
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.Language = language
	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving language")
	}
	return current, nil
}

// Translations resolves the dictionary for the currently configured
// language, returning the language code alongside.
func (s *service) Translations(ctx context.Context) (map[string]string, string, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	lang := i18n.Normalize(current.Language)
	return i18n.Lookup(lang), lang, nil
}
