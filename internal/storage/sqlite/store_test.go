package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/storage/compliance"
	"github.com/mkurov/dela/internal/storage/sqlite"
)

func TestRepositoryCompliance(t *testing.T) {
	compliance.RunRepositoryComplianceTest(t, func(t *testing.T) task.Repository {
		store, err := sqlite.NewStore(context.Background(), sqlite.DefaultDSN)
		require.NoError(t, err)
		return store
	})
}
