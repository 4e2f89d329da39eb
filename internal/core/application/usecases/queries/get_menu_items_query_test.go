package queries_test

import (
	"testing"

	"pos/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMenuItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuItemsQuery("drinks", true)
	require.NoError(t, query.Validate())
	assert.Equal(t, "drinks", query.Category())
	assert.True(t, query.AvailableOnly())
}

func TestGetMenuItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuItemsQueryIsNotConstructed)
}
