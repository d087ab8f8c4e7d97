package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/seorin-lab/resto-backoffice/pkg/config"
)

func newFileClient(t *testing.T) *Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "restaurant.db"),
	}
	client, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{Driver: config.DriverSQLite}, nil)
	require.Error(t, err)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{Driver: "oracle", DSN: "x"}, nil)
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	client := newFileClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client := newFileClient(t)
	require.NoError(t, client.DB().Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY, v TEXT)`).Error)

	sentinel := errors.New("abort")
	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Exec(`INSERT INTO scratch (v) VALUES ('a')`).Error; err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	var count int64
	require.NoError(t, client.DB().Table("scratch").Count(&count).Error)
	assert.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	client := newFileClient(t)
	require.NoError(t, client.DB().Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY, v TEXT)`).Error)

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec(`INSERT INTO scratch (v) VALUES ('a')`).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, client.DB().Table("scratch").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
