package repository

import (
	"campuseats-be/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Selections").
		Preload("Payment").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Payment").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByStatus(status string) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Order("created_at DESC").Preload("Payment")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

// --- payments ---

func (r *OrderRepository) CreatePayment(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *OrderRepository) FindPaymentByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) FindPaymentByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) SavePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}
