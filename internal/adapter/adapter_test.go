package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obops/obadmin/internal/testutil"
)

func TestReturnsRows(t *testing.T) {
	tests := []struct {
		stmt string
		want bool
	}{
		{"SELECT 1", true},
		{"  select * from t", true},
		{"SHOW PROCESSLIST", true},
		{"desc t", true},
		{"DESCRIBE t", true},
		{"EXPLAIN SELECT 1", true},
		{"WITH x AS (SELECT 1) SELECT * FROM x", true},
		{"VALUES (1)", true},
		{"TABLE t", true},
		{"PRAGMA table_info(t)", true},
		{"INSERT INTO t VALUES (1)", false},
		{"UPDATE t SET a = 1", false},
		{"DELETE FROM t", false},
		{"DROP TABLE t", false},
		{"ALTER SYSTEM SET x = 1", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReturnsRows(tt.stmt), "stmt %q", tt.stmt)
	}
}

func newMockBase(t *testing.T) (*BaseSQLAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &BaseSQLAdapter{DB: db, Logger: testutil.NewTestLogger(t)}, mock
}

func TestRunQueryPath(t *testing.T) {
	base, mock := newMockBase(t)
	mock.ExpectQuery("SELECT id, name FROM t").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "alpha").
			AddRow(int64(2), nil))

	out, err := base.Run(context.Background(), "SELECT id, name FROM t")
	require.NoError(t, err)
	require.True(t, out.ReturnedRows())

	assert.Equal(t, []string{"id", "name"}, out.Rows.Headers)
	require.Len(t, out.Rows.Rows, 2)
	assert.Equal(t, "alpha", out.Rows.Rows[0][1].String())
	assert.True(t, out.Rows.Rows[1][1].IsNull())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunExecPath(t *testing.T) {
	base, mock := newMockBase(t)
	mock.ExpectExec("UPDATE t SET a = 1").WillReturnResult(sqlmock.NewResult(0, 3))

	out, err := base.Run(context.Background(), "UPDATE t SET a = 1")
	require.NoError(t, err)
	assert.False(t, out.ReturnedRows())
	assert.Equal(t, int64(3), out.Affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunQueryError(t *testing.T) {
	base, mock := newMockBase(t)
	mock.ExpectQuery("SELECT boom").WillReturnError(assert.AnError)

	_, err := base.Run(context.Background(), "SELECT boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute query")
}

func TestRunWithoutConnection(t *testing.T) {
	base := &BaseSQLAdapter{}
	_, err := base.Run(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestCloseWithoutConnection(t *testing.T) {
	base := &BaseSQLAdapter{}
	assert.NoError(t, base.Close())
	assert.False(t, base.IsConnected())
}

func TestRegistryKnowsBuiltins(t *testing.T) {
	names := ListAdapters()
	assert.Contains(t, names, "mysql")
	assert.Contains(t, names, "postgres")
	assert.Contains(t, names, "sqlite")
}

func TestNewUnknownAdapter(t *testing.T) {
	_, err := New("oracle", testutil.NewTestLogger(t))
	require.Error(t, err)

	var unknownErr *UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "oracle", unknownErr.Type)
	assert.Contains(t, unknownErr.Available, "mysql")
}

func TestNewEmptyType(t *testing.T) {
	_, err := New("", testutil.NewTestLogger(t))
	assert.Error(t, err)
}
