package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumispa/salon-api/internal/models"
)

func testCatalog() []models.Service {
	return []models.Service{
		{ID: "svc-a", Name: "Chăm sóc da", Price: 200000, DurationMin: 30, IsActive: true},
		{ID: "svc-b", Name: "Gội đầu thảo dược", Price: 150000, DurationMin: 45, IsActive: true},
		{ID: "svc-off", Name: "Massage đá nóng", Price: 500000, DurationMin: 60, IsActive: false},
	}
}

func TestComputeTotal_SumsSelectedServices(t *testing.T) {
	total, lines, err := ComputeTotal([]string{"svc-a", "svc-b"}, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, int64(350000), total)
	require.Len(t, lines, 2)
	assert.Equal(t, ServiceLine{ServiceID: "svc-a", Price: 200000}, lines[0])
	assert.Equal(t, ServiceLine{ServiceID: "svc-b", Price: 150000}, lines[1])
}

func TestComputeTotal_DuplicatesCollapse(t *testing.T) {
	withDup, _, err := ComputeTotal([]string{"svc-a", "svc-a", "svc-b"}, testCatalog())
	require.NoError(t, err)

	without, _, err := ComputeTotal([]string{"svc-a", "svc-b"}, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, without, withDup)
}

func TestComputeTotal_UnknownServiceRejected(t *testing.T) {
	_, _, err := ComputeTotal([]string{"svc-a", "svc-missing"}, testCatalog())
	require.Error(t, err)

	var use *UnknownServiceError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "svc-missing", use.ServiceID)
}

func TestComputeTotal_InactiveServiceRejected(t *testing.T) {
	_, _, err := ComputeTotal([]string{"svc-a", "svc-off"}, testCatalog())
	require.Error(t, err)

	var ise *InactiveServiceError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, "svc-off", ise.ServiceID)
}

func TestComputeTotal_EmptySelectionRejected(t *testing.T) {
	_, _, err := ComputeTotal(nil, testCatalog())
	assert.ErrorIs(t, err, ErrEmptyServiceSelection)

	_, _, err = ComputeTotal([]string{}, testCatalog())
	assert.ErrorIs(t, err, ErrEmptyServiceSelection)
}
