package moderation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsWordsCaseInsensitive(t *testing.T) {
	s := NewScannerFromWords([]string{"arma", "estafa"})

	found := s.Scan("Vendo ARMA antigua", "descripción normal")
	assert.Equal(t, []string{"arma"}, found)
}

func TestScanAcrossTitleAndDescription(t *testing.T) {
	s := NewScannerFromWords([]string{"estafa", "fraude"})

	found := s.Scan("servicio honesto", "sin fraude ni ESTAFA")
	assert.ElementsMatch(t, []string{"estafa", "fraude"}, found)
}

func TestScanCleanTextReturnsNothing(t *testing.T) {
	s := NewScannerFromWords([]string{"arma", "droga"})

	found := s.Scan("Clases de guitarra", "Aprende acordes desde cero")
	assert.Empty(t, found)
}

func TestScanMatchesSubstrings(t *testing.T) {
	s := NewScannerFromWords([]string{"droga"})

	found := s.Scan("venta de drogas", "")
	assert.Equal(t, []string{"droga"}, found)
}

func TestNewScannerLoadsExtraWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comentario\npalabrota\n\n  OTRA  \n"), 0o644))

	s, err := NewScanner(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"palabrota"}, s.Scan("una palabrota aquí"))
	assert.Equal(t, []string{"otra"}, s.Scan("y OTRA más"))
}

func TestNewScannerMissingFileFails(t *testing.T) {
	_, err := NewScanner("/nonexistent/words.txt")
	assert.Error(t, err)
}
