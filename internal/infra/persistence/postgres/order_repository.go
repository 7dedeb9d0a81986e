package postgres

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists an order together with all of its items. The order row
// is written before the item rows so items never exist without their parent;
// when called inside TransactionManager.Execute both writes share one transaction.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateOrder
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCheckoutFailed.WrapMessage("order references unknown user or product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCheckoutFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves all orders placed by a user, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// purchaseFactRow is the raw row shape of the reconciliation query.
type purchaseFactRow struct {
	UserID    string
	ProductID string
	Quantity  int
	OrderDate time.Time
}

// ListPurchaseFacts returns purchase rows for orders placed at or after the
// given time, oldest first, for replay into the relationship store.
func (repo *orderRepository) ListPurchaseFacts(ctx context.Context, since time.Time) ([]*entity.PurchaseFact, error) {
	sql := `
		SELECT o.user_id, oi.product_id, oi.quantity, o.order_date
		FROM orders o
		JOIN order_items oi ON o.id = oi.order_id
		WHERE o.order_date >= ?
		ORDER BY o.order_date ASC`

	var rows []purchaseFactRow
	if err := repo.db.WithContext(ctx).Raw(sql, since).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchase facts")
	}

	facts := make([]*entity.PurchaseFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, &entity.PurchaseFact{
			UserID:    row.UserID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Date:      row.OrderDate,
		})
	}

	return facts, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			OrderID:         itemM.OrderID,
			ProductID:       itemM.ProductID,
			Quantity:        itemM.Quantity,
			PriceAtPurchase: itemM.PriceAtPurchase,
		})
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		OrderDate:  data.OrderDate,
		Status:     entity.OrderStatus(data.Status),
		TotalPrice: data.TotalPrice,
		Items:      items,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:         data.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		OrderDate:  data.OrderDate,
		Status:     string(data.Status),
		TotalPrice: data.TotalPrice,
		Items:      items,
	}
}
