package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopmart/backend/internal/adapter/storage"
	"github.com/shopmart/backend/internal/core/domain"
	"github.com/shopmart/backend/internal/core/port"
)

const paymentIDConstraint = "orders_payment_id_key"

var orderColumns = []string{
	"id", "number",
	"customer_name", "customer_email", "customer_phone", "address",
	"items", "total_amount", "status", "payment_status",
	"payment_id", "gateway_order_id", "tracking_number",
	"estimated_delivery", "notes", "created_at", "updated_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

type addressRow struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type lineItemRow struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

func marshalAddress(a domain.Address) ([]byte, error) {
	return json.Marshal(addressRow(a))
}

func marshalItems(items []domain.LineItem) ([]byte, error) {
	rows := make([]lineItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, lineItemRow{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price.String(),
			Quantity:  it.Quantity,
			Image:     it.Image,
			Category:  it.Category,
		})
	}
	return json.Marshal(rows)
}

func unmarshalItems(data []byte) ([]domain.LineItem, error) {
	var rows []lineItemRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, 0, len(rows))
	for _, r := range rows {
		price, err := decimal.Parse(r.Price)
		if err != nil {
			return nil, fmt.Errorf("bad item price %q: %w", r.Price, err)
		}
		items = append(items, domain.LineItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			Price:     price,
			Quantity:  r.Quantity,
			Image:     r.Image,
			Category:  r.Category,
		})
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var addressData, itemsData []byte
	var status, paymentStatus string

	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&addressData,
		&itemsData,
		&order.TotalAmount,
		&status,
		&paymentStatus,
		&order.PaymentID,
		&order.GatewayOrderID,
		&order.TrackingNumber,
		&order.EstimatedDelivery,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var addr addressRow
	if err := json.Unmarshal(addressData, &addr); err != nil {
		return nil, err
	}
	order.Customer.Address = domain.Address(addr)

	order.Items, err = unmarshalItems(itemsData)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	order.PaymentStatus = domain.PaymentStatus(paymentStatus)

	return &order, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	addressData, err := marshalAddress(order.Customer.Address)
	if err != nil {
		return nil, err
	}
	itemsData, err := marshalItems(order.Items)
	if err != nil {
		return nil, err
	}

	statement := or.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.Number,
			order.Customer.Name, order.Customer.Email, order.Customer.Phone, addressData,
			itemsData, order.TotalAmount, string(order.Status), string(order.PaymentStatus),
			order.PaymentID, order.GatewayOrderID, order.TrackingNumber,
			order.EstimatedDelivery, order.Notes, order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == paymentIDConstraint {
				return nil, domain.ErrDuplicatePayment
			}
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(or.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

// UpdateOrder runs updateFn against the current row under a row lock, so
// concurrent updates to the same order are serialized and every transition
// check observes the previously persisted state.
func (or *Repository) UpdateOrder(ctx context.Context, orderID string, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var updated *domain.Order

	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		statement := or.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		if err := updateFn(order); err != nil {
			return err
		}

		updateSt := or.db.QueryBuilder.Update("orders").
			Set("status", string(order.Status)).
			Set("payment_status", string(order.PaymentStatus)).
			Set("tracking_number", order.TrackingNumber).
			Set("estimated_delivery", order.EstimatedDelivery).
			Set("notes", order.Notes).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": orderID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (or *Repository) ListOrdersByCustomer(ctx context.Context, email string) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Expr("lower(customer_email) = lower(?)", email)).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (or *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := or.db.QueryBuilder.
		Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, string(user.Role)).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&(user.ID))
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (or *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := or.db.QueryBuilder.
		Select("id", "name", "email", "password", "role").
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	var role string

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	user.Role = domain.UserRole(role)

	return &user, nil
}
