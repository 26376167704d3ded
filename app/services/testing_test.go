package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"coffee-commerce/app/models/migrations"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB opens a uniquely named shared-cache in-memory database so reads
// through the root handle can proceed while a transaction is open on another
// pooled connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

// fakeFileStorage records stores and deletes without touching the filesystem.
type fakeFileStorage struct {
	stored  []string
	deleted []string
}

func (f *fakeFileStorage) Store(file *UploadedFile, subDir string) (string, error) {
	if file == nil || file.File == nil {
		return "", nil
	}
	path := fmt.Sprintf("%s/fake-%d.png", subDir, len(f.stored)+1)
	f.stored = append(f.stored, path)
	return path, nil
}

func (f *fakeFileStorage) Delete(relativePath string) bool {
	f.deleted = append(f.deleted, relativePath)
	return true
}
