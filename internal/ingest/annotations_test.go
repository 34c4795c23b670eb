package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablero/internal/domain"
	"tablero/internal/ingest"
)

func items(codes ...string) []domain.LineItem {
	out := make([]domain.LineItem, len(codes))
	for i, c := range codes {
		out[i] = domain.LineItem{Code: c, Quantity: 1}
	}
	return out
}

func TestMergeAnnotations_AttachesByCode(t *testing.T) {
	merged := ingest.MergeAnnotations(items("R20", "R12"), "R20 rojos")

	require.Len(t, merged, 2)
	assert.Equal(t, "rojos", merged[0].Note)
	assert.Empty(t, merged[1].Note)
}

func TestMergeAnnotations_SplitsOnNewlineAndDoubleSlash(t *testing.T) {
	merged := ingest.MergeAnnotations(items("R20", "R12"), "R20 rojos // R12 con rueditas\nR20 uno negro")

	require.Len(t, merged, 2)
	assert.Equal(t, "rojos | uno negro", merged[0].Note)
	assert.Equal(t, "con rueditas", merged[1].Note)
}

func TestMergeAnnotations_MatchesIgnoringWhitespace(t *testing.T) {
	merged := ingest.MergeAnnotations(items("R20"), "R 20 rojos")

	// The stripped fragment "R20rojos" contains "R20"; the literal code
	// text is not present in the fragment, so nothing is cut from it.
	require.Len(t, merged, 1)
	assert.Equal(t, "R 20 rojos", merged[0].Note)
}

func TestMergeAnnotations_FragmentMayAttachToSeveralItems(t *testing.T) {
	merged := ingest.MergeAnnotations(items("R20", "R20 MTB"), "R20 MTB negras")

	require.Len(t, merged, 2)
	// "R20MTBnegras" contains both "R20" and "R20MTB".
	assert.Equal(t, "MTB negras", merged[0].Note)
	assert.Equal(t, "negras", merged[1].Note)
}

func TestMergeAnnotations_RemergeDuplicatesNotes(t *testing.T) {
	once := ingest.MergeAnnotations(items("R20"), "R20 rojos")
	twice := ingest.MergeAnnotations(once, "R20 rojos")

	require.Len(t, twice, 1)
	assert.Equal(t, "rojos | rojos", twice[0].Note)
}

func TestMergeAnnotations_NoFragments(t *testing.T) {
	in := items("R20")
	merged := ingest.MergeAnnotations(in, "   \n  ")

	assert.Equal(t, in, merged)
}

func TestMergeAnnotations_DoesNotMutateInput(t *testing.T) {
	in := items("R20")
	_ = ingest.MergeAnnotations(in, "R20 rojos")

	assert.Empty(t, in[0].Note)
}
