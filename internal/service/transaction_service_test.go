package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/falliso3/capstone-fraud-rpa/internal/models"
	"github.com/falliso3/capstone-fraud-rpa/internal/service"
	"github.com/falliso3/capstone-fraud-rpa/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTransactionService_ListRecent(t *testing.T) {
	repo := mocks.NewMockQueryRepo(t)
	txService := service.NewTransactionService(repo)

	ctx := context.Background()
	expected := &[]models.Transaction{{ID: "pi_1"}, {ID: "pi_2"}}

	repo.EXPECT().ListRecent(ctx, 50).Return(expected, nil).Once()

	txs, err := txService.ListRecent(ctx, 50)

	assert.NoError(t, err)
	assert.Equal(t, expected, txs)
}

func TestTransactionService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockQueryRepo(t)
	txService := service.NewTransactionService(repo)

	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, "pi_missing").Return(nil, gorm.ErrRecordNotFound).Once()

	tx, err := txService.GetByID(ctx, "pi_missing")

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTransactionService_MarkSummaryNeeded(t *testing.T) {
	repo := mocks.NewMockQueryRepo(t)
	txService := service.NewTransactionService(repo)

	ctx := context.Background()
	expectedError := errors.New("update failed")

	repo.EXPECT().MarkSummaryNeeded(ctx, "pi_1").Return(expectedError).Once()

	err := txService.MarkSummaryNeeded(ctx, "pi_1")

	assert.ErrorIs(t, err, expectedError)
}
