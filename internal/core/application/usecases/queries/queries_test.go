package queries_test

import (
	"testing"
	"time"

	"driverops/internal/core/application/usecases/queries"
	"driverops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery(t *testing.T) {
	driverID := kernel.NewUUID()
	query, err := queries.NewGetActiveOrdersQuery(driverID)
	require.NoError(t, err)
	assert.Equal(t, driverID, query.DriverID())
	assert.NoError(t, query.Validate())

	_, err = queries.NewGetActiveOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetActiveOrdersQuery{}.Validate(),
		queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetOrderWorkflowQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderWorkflowQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())

	_, err = queries.NewGetOrderWorkflowQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewAuditActiveOrdersQuery(t *testing.T) {
	now := time.Now().UTC()
	query, err := queries.NewAuditActiveOrdersQuery(now)
	require.NoError(t, err)
	assert.Equal(t, now, query.Now())
	assert.NoError(t, query.Validate())

	_, err = queries.NewAuditActiveOrdersQuery(time.Time{})
	require.Error(t, err)
}
