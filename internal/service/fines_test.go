package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/library-management-api/internal/models"
	"github.com/pribylovaa/library-management-api/internal/storage"
)

func testFineInput() FineInput {
	return FineInput{
		StudentID:     42,
		TransactionID: uuid.New(),
		Amount:        150,
		Status:        models.FineStatusUnpaid,
	}
}

func TestCreateFine_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := testFineInput()
	st.EXPECT().SaveFine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Fine) error {
			require.NotEqual(t, uuid.Nil, f.ID)
			require.Equal(t, in.Amount, f.Amount)
			require.Equal(t, in.Status, f.Status)
			return nil
		})

	fine, err := svc.CreateFine(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, in.StudentID, fine.StudentID)
}

func TestCreateFine_Validation(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := testFineInput()
	in.StudentID = 0
	in.Amount = -5
	in.Status = models.FineStatus("Overdue")

	_, err := svc.CreateFine(context.Background(), in)
	require.Error(t, err)
	requireValidation(t, err, "Student ID must be a positive number")
	requireValidation(t, err, "Fine Amount must be a positive number")
	requireValidation(t, err, "Fine Status must be one of Paid, Unpaid, Fine Incurred, Fine Paid, Not Returned")
}

func TestCreateFine_AllStatusesAccepted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	statuses := []models.FineStatus{
		models.FineStatusPaid,
		models.FineStatusUnpaid,
		models.FineStatusIncurred,
		models.FineStatusFinePaid,
		models.FineStatusNotReturned,
	}

	st.EXPECT().SaveFine(gomock.Any(), gomock.Any()).Return(nil).Times(len(statuses))

	for _, status := range statuses {
		in := testFineInput()
		in.Status = status
		_, err := svc.CreateFine(context.Background(), in)
		require.NoError(t, err, "status %q", status)
	}
}

func TestUpdateFine_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().FineByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := svc.UpdateFine(context.Background(), id, testFineInput())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFine_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	id := uuid.New()
	st.EXPECT().DeleteFine(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.DeleteFine(context.Background(), id))
}
