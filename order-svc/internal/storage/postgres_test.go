package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), sqlMock
}

func TestEnsureSchema(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	for i := 0; i < 10; i++ {
		sqlMock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreateRestaurant(t *testing.T) {
	now := time.Now()

	t.Run("stored", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("INSERT INTO restaurants").
			WithArgs(sqlmock.AnyArg(), "Cafe Test", "cafe-test", "", "auth-1").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		rest := &domain.Restaurant{Name: "Cafe Test", Slug: "cafe-test", OwnerID: "auth-1"}
		require.NoError(t, repo.CreateRestaurant(context.Background(), rest))
		assert.NotEmpty(t, rest.ID)
		assert.Equal(t, now, rest.CreatedAt)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("slug taken", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("INSERT INTO restaurants").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "restaurants_slug_key"})

		err := repo.CreateRestaurant(context.Background(), &domain.Restaurant{Name: "Cafe Test", Slug: "cafe-test"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestGetRestaurantNotFound(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	sqlMock.ExpectQuery("SELECT (.+) FROM restaurants WHERE slug").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRestaurantBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveTableToken(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "missing table", affected: 0, wantErr: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, sqlMock := newMockRepo(t)
			sqlMock.ExpectExec("UPDATE tables SET token").
				WithArgs("tok", []byte("png"), "t1", "r1").
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))

			err := repo.SaveTableToken(context.Background(), "r1", "t1", "tok", []byte("png"))
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}

func TestGetMenuItems(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	now := time.Now()
	cols := []string{"id", "restaurant_id", "category_id", "name", "description", "price", "image_url", "available", "sold_out", "created_at", "updated_at"}
	sqlMock.ExpectQuery("FROM menu_items WHERE restaurant_id = \\$1 AND id = ANY").
		WithArgs("r1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("m1", "r1", "c1", "Latte", "", 4.5, "", true, false, now, now).
			AddRow("m2", "r1", "c1", "Soup", "", 7.0, "", true, true, now, now))

	items, err := repo.GetMenuItems(context.Background(), "r1", []string{"m1", "m2", "other"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, items["m1"].Orderable())
	assert.False(t, items["m2"].Orderable())
	_, ok := items["other"]
	assert.False(t, ok)
}

func TestCreateOrder(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	now := time.Now()
	tableID := "t1"
	order := &domain.Order{
		RestaurantID:    "r1",
		TableID:         &tableID,
		CustomerSession: "customer_x",
		Status:          domain.StatusPending,
		Total:           12.25,
		Items: []domain.OrderItem{
			{MenuItemID: "m1", MenuItemName: "Latte", Quantity: 2, Price: 4.5},
			{MenuItemID: "m2", MenuItemName: "Croissant", Quantity: 1, Price: 3.25},
		},
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), "r1", "t1", "customer_x", "PENDING", 12.25, "", 1, "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	sqlMock.ExpectExec("INSERT INTO order_items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "m1", "Latte", 2, 4.5, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("INSERT INTO order_items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "m2", "Croissant", 1, 3.25, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, order.Version)
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotEmpty(t, item.ID)
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreateOrderRollsBack(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	now := time.Now()

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	sqlMock.ExpectExec("INSERT INTO order_items").WillReturnError(assert.AnError)
	sqlMock.ExpectRollback()

	err := repo.CreateOrder(context.Background(), &domain.Order{
		RestaurantID: "r1", CustomerSession: "bar_tab_1", Status: domain.StatusPending,
		Items: []domain.OrderItem{{MenuItemID: "m1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

var orderCols = []string{"id", "restaurant_id", "table_id", "table_name", "customer_session", "status", "total",
	"special_instructions", "version", "created_by", "updated_by", "created_at", "updated_at"}

var itemCols = []string{"id", "order_id", "menu_item_id", "menu_item_name", "quantity", "price", "special_instructions"}

func TestGetOrder(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	now := time.Now()

	sqlMock.ExpectQuery("FROM orders o\\s+LEFT JOIN tables t").
		WithArgs("o1", "r1").
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow("o1", "r1", "t1", "T1", "customer_x", "PREPARING", 9.0, "", 2, "", "u1", now, now))
	sqlMock.ExpectQuery("FROM order_items").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow("i1", "o1", "m1", "Latte", 2, 4.5, "oat"))

	order, err := repo.GetOrder(context.Background(), "r1", "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	assert.Equal(t, "t1", *order.TableID)
	assert.Equal(t, "T1", order.TableName)
	assert.Equal(t, 2, order.Version)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "oat", order.Items[0].SpecialInstructions)
}

func TestGetOrderTab(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	now := time.Now()

	sqlMock.ExpectQuery("FROM orders o").
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow("o2", "r1", nil, "", "bar_tab_1", "PENDING", 0.0, "Bar tab for Alex", 1, "u2", "u2", now, now))
	sqlMock.ExpectQuery("FROM order_items").WillReturnRows(sqlmock.NewRows(itemCols))

	order, err := repo.GetOrder(context.Background(), "r1", "o2")
	require.NoError(t, err)
	assert.Nil(t, order.TableID)
	assert.Equal(t, "bar_tab_1", order.TabKey())
	assert.NotNil(t, order.Items)
}

func TestGetOrderNotFound(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	sqlMock.ExpectQuery("FROM orders o").WillReturnRows(sqlmock.NewRows(orderCols))

	_, err := repo.GetOrder(context.Background(), "r1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders(t *testing.T) {
	t.Run("with lines", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		now := time.Now()
		sqlMock.ExpectQuery("o.status = ANY").
			WithArgs("r1", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow("o1", "r1", "t1", "T1", "customer_x", "PENDING", 4.5, "", 1, "", "", now, now).
				AddRow("o2", "r1", nil, "", "bar_tab_1", "READY", 3.0, "", 3, "", "", now, now))
		sqlMock.ExpectQuery("FROM order_items").
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow("i1", "o1", "m1", "Latte", 1, 4.5, "").
				AddRow("i2", "o2", "m4", "Beer", 1, 3.0, ""))

		orders, err := repo.ListOrders(context.Background(), "r1", domain.ActiveStatuses)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Len(t, orders[0].Items, 1)
		assert.Equal(t, "Beer", orders[1].Items[0].MenuItemName)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("empty skips line query", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("o.status = ANY").WillReturnRows(sqlmock.NewRows(orderCols))

		orders, err := repo.ListOrders(context.Background(), "r1", domain.ActiveStatuses)
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestUpdateStatus(t *testing.T) {
	change := domain.StatusChange{
		RestaurantID: "r1", OrderID: "o1",
		From: domain.StatusPending, To: domain.StatusPreparing,
		ExpectedVersion: 3, ChangedBy: "u1",
	}

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "applied with history",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders\\s+SET status").
					WithArgs("PREPARING", "u1", "o1", "r1", "PENDING", 3).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("INSERT INTO order_status_history").
					WithArgs(sqlmock.AnyArg(), "o1", "PENDING", "PREPARING", "u1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name: "someone else won",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders\\s+SET status").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery("SELECT EXISTS").
					WithArgs("o1", "r1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				m.ExpectRollback()
			},
			wantErr: domain.ErrVersionConflict,
		},
		{
			name: "order gone",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders\\s+SET status").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				m.ExpectRollback()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, sqlMock := newMockRepo(t)
			sqlMock.ExpectBegin()
			testCase.setup(sqlMock)

			err := repo.UpdateStatus(context.Background(), change)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}

func TestItemEdits(t *testing.T) {
	edit := domain.ItemEdit{RestaurantID: "r1", OrderID: "o1", ItemID: "i1", Quantity: 3, SpecialInstructions: "hot", ExpectedVersion: 2, ChangedBy: "u1"}

	t.Run("update recomputes total", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("UPDATE orders\\s+SET version = version \\+ 1").
			WithArgs("u1", "o1", "r1", 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec("UPDATE order_items SET quantity").
			WithArgs(3, "hot", "i1", "o1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec("SET total = COALESCE").
			WithArgs("o1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectCommit()

		require.NoError(t, repo.UpdateItem(context.Background(), edit))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("delete of a missing line", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("UPDATE orders\\s+SET version").WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectExec("DELETE FROM order_items").
			WithArgs("i1", "o1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectRollback()

		err := repo.DeleteItem(context.Background(), edit)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("UPDATE orders\\s+SET version").WillReturnResult(sqlmock.NewResult(0, 0))
		sqlMock.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		sqlMock.ExpectRollback()

		err := repo.UpdateItem(context.Background(), edit)
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	})
}

func TestUserProfiles(t *testing.T) {
	now := time.Now()
	cols := []string{"id", "email", "name", "role", "restaurant_id", "auth_user_id", "created_at", "updated_at"}

	t.Run("lookup", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("FROM users WHERE auth_user_id").
			WithArgs("auth-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u1", "cook@cafe.test", "Sam", "KITCHEN", "r1", "auth-1", now, now))

		user, err := repo.GetUserProfile(context.Background(), "auth-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleKitchen, user.Role)
		assert.Equal(t, "r1", user.RestaurantID)
	})

	t.Run("no profile", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("FROM users WHERE auth_user_id").WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetUserProfile(context.Background(), "auth-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate login", func(t *testing.T) {
		repo, sqlMock := newMockRepo(t)
		sqlMock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "cook@cafe.test", "Sam", "KITCHEN", "r1", "auth-1").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_auth_user_id_key"})

		err := repo.CreateUserProfile(context.Background(), &domain.User{
			Email: "cook@cafe.test", Name: "Sam", Role: domain.RoleKitchen, RestaurantID: "r1", AuthUserID: "auth-1",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestAnalyticsSummaryFromTables(t *testing.T) {
	repo, sqlMock := newMockRepo(t)
	sqlMock.ExpectQuery("SELECT COUNT\\(\\*\\), COALESCE\\(SUM\\(total\\), 0\\)").
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(4, 52.5))
	sqlMock.ExpectQuery("GROUP BY oi.menu_item_name").
		WithArgs("r1", 5).
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_name", "count", "revenue"}).
			AddRow("Latte", 6, 27.0).
			AddRow("Croissant", 3, 9.75))

	summary, err := repo.AnalyticsSummary(context.Background(), "r1", 5)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalOrders)
	assert.Equal(t, 52.5, summary.Revenue)
	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, domain.TopItem{Name: "Latte", Count: 6, Revenue: 27}, summary.TopItems[0])
}
