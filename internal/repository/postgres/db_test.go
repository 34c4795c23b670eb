package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetClause(t *testing.T) {
	allowed := map[string]bool{"client": true, "priority": true}

	clause, args, next, err := buildSetClause(map[string]interface{}{"client": "ACME SA"}, allowed)
	require.NoError(t, err)
	assert.Equal(t, "client = $1", clause)
	assert.Equal(t, []interface{}{"ACME SA"}, args)
	assert.Equal(t, 2, next)
}

func TestBuildSetClause_MultipleFields(t *testing.T) {
	allowed := map[string]bool{"client": true, "priority": true}

	clause, args, next, err := buildSetClause(map[string]interface{}{
		"client":   "ACME SA",
		"priority": true,
	}, allowed)
	require.NoError(t, err)
	assert.Len(t, args, 2)
	assert.Equal(t, 3, next)
	assert.Contains(t, clause, " = $")
}

func TestBuildSetClause_RejectsUnknownColumn(t *testing.T) {
	allowed := map[string]bool{"client": true}

	_, _, _, err := buildSetClause(map[string]interface{}{"password_hash": "x"}, allowed)
	assert.Error(t, err)
}
