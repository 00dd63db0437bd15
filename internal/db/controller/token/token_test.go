package token

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mormao/randstr/alphabet"
	"github.com/mormao/randstr/generator"
	"github.com/mormao/randstr/internal/config"
	ledger "github.com/mormao/randstr/internal/db"
	"github.com/mormao/randstr/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// every pooled connection would get its own in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Token{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// sequenceSource returns the given indices in order, then repeats the last one.
func sequenceSource(indices ...int) generator.SourceFunc {
	i := 0

	return func(int) int {
		v := indices[min(i, len(indices)-1)]
		i++

		return v
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("abc")
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Fingerprint("abc"))
	assert.NotEqual(t, fp, Fingerprint("abd"))
}

func TestRecord(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		value         string
		expectedError error
	}{
		{name: "nil database", dbParam: nil, value: "abc", expectedError: ErrDBNil},
		{name: "empty token", dbParam: db, value: "", expectedError: ErrTokenEmpty},
		{name: "first record", dbParam: db, value: "abc"},
		{name: "repeat", dbParam: db, value: "abc", expectedError: ErrTokenAlreadyIssued},
		{name: "other token", dbParam: db, value: "xyz_42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := Record(tc.dbParam, tc.value)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, token)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, Fingerprint(tc.value), token.Fingerprint)
			assert.Equal(t, len(tc.value), token.Length)
			assert.NotZero(t, token.ID)
		})
	}

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetExistsDelete(t *testing.T) {
	db := setupTestDB(t)

	_, err := Get(db, "missing")
	require.ErrorIs(t, err, ErrTokenNotFound)

	exists, err := Exists(db, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = Record(db, "present")
	require.NoError(t, err)

	token, err := Get(db, "present")
	require.NoError(t, err)
	assert.Equal(t, 7, token.Length)

	exists, err = Exists(db, "present")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, Delete(db, "present"))
	require.ErrorIs(t, Delete(db, "present"), ErrTokenNotFound)
	require.ErrorIs(t, Delete(db, ""), ErrTokenEmpty)
	require.ErrorIs(t, Delete(nil, "present"), ErrDBNil)

	_, err = Count(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestIssue(t *testing.T) {
	db := setupTestDB(t)

	digits, err := alphabet.NewBuilder().WithDigits().Build()
	require.NoError(t, err)

	// draws: "11", then "11" again, then "12"
	gen, err := generator.New(digits, sequenceSource(1, 1, 1, 1, 1, 2))
	require.NoError(t, err)

	first, collisions, err := Issue(db, gen, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "11", first)
	assert.Zero(t, collisions)

	second, collisions, err := Issue(db, gen, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "12", second)
	assert.Equal(t, 1, collisions)
}

func TestIssueExhausted(t *testing.T) {
	db := setupTestDB(t)

	gen, err := generator.New(alphabet.NewText("a"), generator.NewSeededSource(1))
	require.NoError(t, err)

	_, _, err = Issue(db, gen, 3, 3)
	require.NoError(t, err)

	_, collisions, err := Issue(db, gen, 3, 3)
	require.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, 3, collisions)
}

func TestIssueErrors(t *testing.T) {
	gen := generator.Default()

	_, _, err := Issue(nil, gen, 4, 1)
	require.ErrorIs(t, err, ErrDBNil)

	_, _, err = Issue(setupTestDB(t), gen, -1, 1)
	require.ErrorIs(t, err, generator.ErrInvalidSize)
}

func TestIssueManyUnique(t *testing.T) {
	db := setupTestDB(t)
	seen := map[string]bool{}

	for range 50 {
		value, _, err := Issue(db, generator.Default(), 12, 3)
		require.NoError(t, err)
		assert.False(t, seen[value])

		seen[value] = true
	}

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(50), count)
}

// openLedger opens a file backed ledger the way the runner does.
func openLedger(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := ledger.Open(config.DB{Engine: "sqlite", Path: filepath.Join(t.TempDir(), "ledger.db")})
	require.NoError(t, err)

	t.Cleanup(func() { require.NoError(t, ledger.Close(db)) })

	return db
}

// insertBeforeCreate makes another writer store value right before the next insert,
// after Record already checked that value was unused. The returned handle commits every
// statement on its own so the other writer's row survives the failed insert.
func insertBeforeCreate(t *testing.T, db *gorm.DB, value string) *gorm.DB {
	t.Helper()

	fired := false

	err := db.Callback().Create().Before("gorm:create").Register("test:concurrent_writer", func(tx *gorm.DB) {
		if fired {
			return
		}

		fired = true

		err := tx.Session(&gorm.Session{NewDB: true}).
			Exec("INSERT INTO tokens (fingerprint, length, created_at) VALUES (?, ?, ?)",
				Fingerprint(value), len(value), time.Now()).Error
		require.NoError(t, err)
	})
	require.NoError(t, err)

	return db.Session(&gorm.Session{SkipDefaultTransaction: true})
}

func TestRecordLosesInsertRace(t *testing.T) {
	db := insertBeforeCreate(t, openLedger(t), "raced")

	token, err := Record(db, "raced")
	require.ErrorIs(t, err, ErrTokenAlreadyIssued)
	assert.Nil(t, token)

	count, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIssueRetriesAfterLostInsertRace(t *testing.T) {
	db := openLedger(t)

	digits, err := alphabet.NewBuilder().WithDigits().Build()
	require.NoError(t, err)

	// draws: "33" which another writer takes first, then "34"
	gen, err := generator.New(digits, sequenceSource(3, 3, 3, 4))
	require.NoError(t, err)

	db = insertBeforeCreate(t, db, "33")

	value, collisions, err := Issue(db, gen, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "34", value)
	assert.Equal(t, 1, collisions)
}
