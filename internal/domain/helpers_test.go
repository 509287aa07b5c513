package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) domain.Dataset {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "global-temperature-sample.json"))
	require.NoError(t, err)

	ds, err := domain.DecodeDataset(data)
	require.NoError(t, err)
	return ds
}
