package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lumispa/salon-api/internal/domain/booking"
)

func createPendingBooking(t *testing.T, repo *fakeRepo) string {
	t.Helper()

	uc := NewCreateBooking(repo, nil, nil)
	_, dateStr := futureDate()

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName:  "Nguyễn Thị Mai",
		CustomerPhone: "0901234567",
		SpecialistID:  strPtr("spec-1"),
		Date:          dateStr,
		Time:          "09:30",
		ServiceIDs:    []string{"svc-a"},
	})
	require.NoError(t, err)

	return b.ID
}

func TestUpdateStatus_ConfirmPending(t *testing.T) {
	repo := bookableRepo()
	id := createPendingBooking(t, repo)

	uc := NewUpdateStatus(repo, nil, nil)

	b, err := uc.Execute(context.Background(), id, domain.StatusUpcoming, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUpcoming), b.Status)

	stored, err := repo.GetBooking(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUpcoming), stored.Status)
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	repo := bookableRepo()
	id := createPendingBooking(t, repo)

	uc := NewUpdateStatus(repo, nil, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, id, domain.StatusUpcoming, nil)
	require.NoError(t, err)

	b, err := uc.Execute(ctx, id, domain.StatusCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)

	// completed é terminal
	_, err = uc.Execute(ctx, id, domain.StatusCanceled, nil)
	var ite *domain.InvalidTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, domain.StatusCompleted, ite.From)
}

func TestUpdateStatus_PendingCannotComplete(t *testing.T) {
	repo := bookableRepo()
	id := createPendingBooking(t, repo)

	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), id, domain.StatusCompleted, nil)

	var ite *domain.InvalidTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, domain.StatusPending, ite.From)
	assert.Equal(t, domain.StatusCompleted, ite.To)
	assert.ElementsMatch(t, []domain.Status{domain.StatusUpcoming, domain.StatusCanceled}, ite.Allowed)

	// nada foi persistido
	stored, err := repo.GetBooking(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestUpdateStatus_GarbageStatusRejected(t *testing.T) {
	repo := bookableRepo()
	id := createPendingBooking(t, repo)

	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), id, domain.Status("approved"), nil)

	var ite *domain.InvalidTransitionError
	require.True(t, errors.As(err, &ite))
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	uc := NewUpdateStatus(bookableRepo(), nil, nil)

	_, err := uc.Execute(context.Background(), "missing", domain.StatusUpcoming, nil)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
