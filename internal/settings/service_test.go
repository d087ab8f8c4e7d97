package settings

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/seorin-lab/resto-backoffice/pkg/errors"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS app_settings (
  id INTEGER PRIMARY KEY,
  restaurant_name TEXT NOT NULL DEFAULT 'My Restaurant',
  logo_path TEXT,
  photo_path TEXT,
  language TEXT NOT NULL DEFAULT 'en',
  kakao_link TEXT NOT NULL DEFAULT ''
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func newSettingsService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(NewRepository(setupSettingsTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestGetFallsBackToDefaultsWhenUnseeded(t *testing.T) {
	svc := newSettingsService(t)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Restaurant", settings.RestaurantName)
	assert.Equal(t, "en", settings.Language)
}

func TestUpdatePersistsBranding(t *testing.T) {
	svc := newSettingsService(t)

	logo := "/uploads/logo.png"
	saved, err := svc.Update(context.Background(), UpdateInput{
		RestaurantName: "  Seorin Kitchen  ",
		LogoPath:       &logo,
		KakaoLink:      "https://pf.kakao.com/_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seorin Kitchen", saved.RestaurantName)

	reloaded, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seorin Kitchen", reloaded.RestaurantName)
	require.NotNil(t, reloaded.LogoPath)
	assert.Equal(t, logo, *reloaded.LogoPath)
	assert.Equal(t, "https://pf.kakao.com/_abc", reloaded.KakaoLink)
}

func TestUpdateRejectsBlankName(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(context.Background(), UpdateInput{RestaurantName: "   "})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSetLanguageValidatesAgainstSupportedSet(t *testing.T) {
	svc := newSettingsService(t)

	saved, err := svc.SetLanguage(context.Background(), "ko")
	require.NoError(t, err)
	assert.Equal(t, "ko", saved.Language)

	_, err = svc.SetLanguage(context.Background(), "fr")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	reloaded, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ko", reloaded.Language, "rejected language must not overwrite the stored one")
}

func TestTranslationsFollowConfiguredLanguage(t *testing.T) {
	svc := newSettingsService(t)

	dict, lang, err := svc.Translations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en", lang)
	assert.Equal(t, "Dashboard", dict["nav_dashboard"])

	_, err = svc.SetLanguage(context.Background(), "ko")
	require.NoError(t, err)

	dict, lang, err = svc.Translations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ko", lang)
	assert.Equal(t, "대시보드", dict["nav_dashboard"])
}
