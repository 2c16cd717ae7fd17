package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/review"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockReviewRepository(t *testing.T) (*GormReviewRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormReviewRepository(gormDB), mock, mockDB
}

func TestGormReviewRepository_ExistsByProductAndCustomer(t *testing.T) {
	t.Run("returns true when review exists", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE product_id = \$1 AND customer_id = \$2`).
			WithArgs(productID, customerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByProductAndCustomer(context.Background(), productID, customerID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when review does not exist", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE product_id = \$1 AND customer_id = \$2`).
			WithArgs(productID, customerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByProductAndCustomer(context.Background(), productID, customerID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormReviewRepository_Save_DuplicateKey(t *testing.T) {
	repo, mock, mockDB := newMockReviewRepository(t)
	defer mockDB.Close()

	r, err := review.NewReview(uuid.New(), uuid.New(), "Jo", "Nice.")
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "reviews"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "reviews"`).
		WillReturnError(gorm.ErrDuplicatedKey)

	err = repo.Save(context.Background(), r)

	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReviewRepository_FindByProduct(t *testing.T) {
	t.Run("returns paginated reviews for product", func(t *testing.T) {
		repo, mock, mockDB := newMockReviewRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows([]string{"id", "product_id", "customer_id", "name", "description", "date"}).
			AddRow(uuid.New(), productID, customerID, "Great vacuum", "Picks up everything", time.Now())

		mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE product_id = \$1 .* LIMIT .*`).
			WillReturnRows(rows)

		result, err := repo.FindByProduct(context.Background(), productID, shared.DefaultFilter())

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Great vacuum", result.Items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
