package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BillRepository implements BillRepository interface using GORM
type BillRepository struct {
	db              *gorm.DB
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBillRepository creates a new BillRepository instance
func NewBillRepository(db *gorm.DB, idGenerator coreport.IDGenerator, logger coreport.Logger) *BillRepository {
	return &BillRepository{
		db:              db,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func billToEntity(m *model.Bill) entity.Bill {
	return entity.Bill{
		ID:          m.ID,
		Name:        m.Name,
		Amount:      m.Amount,
		Frequency:   entity.Frequency(m.Frequency),
		CategoryID:  m.CategoryID,
		WalletID:    m.WalletID,
		NextDueDate: m.NextDueDate.UTC(),
		Active:      m.Active,
		Paid:        m.Paid,
	}
}

func (r *BillRepository) handleDatabaseError(operation string, err error, billID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, "bill", err, map[string]any{
		"bill_id": billID,
	})
}

func (r *BillRepository) list(operation string, query *gorm.DB) ([]entity.Bill, error) {
	var models []model.Bill
	if err := query.Order("next_due_date ASC, id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, "")
	}

	bills := make([]entity.Bill, 0, len(models))
	for i := range models {
		bills = append(bills, billToEntity(&models[i]))
	}
	return bills, nil
}

// List returns all bills ordered by next due date ascending
func (r *BillRepository) List(ctx context.Context) ([]entity.Bill, error) {
	return r.list("listing bills", r.db.WithContext(ctx))
}

// ListActive returns active bills ordered by next due date ascending
func (r *BillRepository) ListActive(ctx context.Context) ([]entity.Bill, error) {
	return r.list("listing active bills", r.db.WithContext(ctx).Where("active = ?", true))
}

// GetByID retrieves a bill by ID
func (r *BillRepository) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	var billModel model.Bill
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&billModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting bill", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	bill := billToEntity(&billModel)
	return &bill, nil
}

// Create inserts an active, unpaid bill and returns the stored row
func (r *BillRepository) Create(ctx context.Context, bill entity.NewBill) (*entity.Bill, error) {
	if err := bill.Validate(); err != nil {
		return nil, err
	}

	billModel := model.Bill{
		ID:          r.idGenerator.NewID(),
		Name:        bill.Name,
		Amount:      bill.Amount,
		Frequency:   string(bill.Frequency),
		CategoryID:  optionalString(bill.CategoryID),
		WalletID:    optionalString(bill.WalletID),
		NextDueDate: bill.NextDueDate.UTC(),
		Active:      true,
		Paid:        false,
	}

	if err := r.db.WithContext(ctx).Create(&billModel).Error; err != nil {
		return nil, r.handleDatabaseError("creating bill", err, billModel.ID)
	}

	created, err := r.GetByID(ctx, billModel.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}

	r.logger.Info("Bill created successfully", map[string]any{
		"bill_id":       created.ID,
		"frequency":     created.Frequency,
		"next_due_date": created.NextDueDate.Format(time.DateOnly),
	})
	return created, nil
}

// UpdateSchedule moves next_due_date and resets paid to false
func (r *BillRepository) UpdateSchedule(ctx context.Context, id string, nextDue time.Time) (*entity.Bill, error) {
	result := r.db.WithContext(ctx).Model(&model.Bill{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"next_due_date": nextDue.UTC(),
			"paid":          false,
		})
	return r.afterUpdate(ctx, "updating bill schedule", id, result)
}

// SetPaid marks the bill paid or unpaid for the current period
func (r *BillRepository) SetPaid(ctx context.Context, id string, paid bool) (*entity.Bill, error) {
	result := r.db.WithContext(ctx).Model(&model.Bill{}).
		Where("id = ?", id).
		Update("paid", paid)
	return r.afterUpdate(ctx, "setting bill paid", id, result)
}

func (r *BillRepository) afterUpdate(ctx context.Context, operation, id string, result *gorm.DB) (*entity.Bill, error) {
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Bill not found during update", map[string]any{"bill_id": id})
		return nil, errs.ErrBillNotFound
	}

	bill, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, errs.ErrBillNotFound
	}
	return bill, nil
}

// BillPaymentRepository implements BillPaymentRepository interface using GORM
type BillPaymentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	idGenerator     coreport.IDGenerator
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBillPaymentRepository creates a new BillPaymentRepository instance
func NewBillPaymentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, idGenerator coreport.IDGenerator, logger coreport.Logger) *BillPaymentRepository {
	return &BillPaymentRepository{
		db:              db,
		timeProvider:    timeProvider,
		idGenerator:     idGenerator,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func billPaymentToEntity(m *model.BillPayment) entity.BillPayment {
	return entity.BillPayment{
		ID:        m.ID,
		BillID:    m.BillID,
		Amount:    m.Amount,
		WalletID:  m.WalletID,
		Status:    entity.PaymentStatus(m.Status),
		PaidAt:    m.PaidAt.UTC(),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// Create inserts a payment record and returns the stored row
func (r *BillPaymentRepository) Create(ctx context.Context, payment entity.NewBillPayment) (*entity.BillPayment, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now()
	paidAt := now
	if payment.PaidAt != nil && !payment.PaidAt.IsZero() {
		paidAt = payment.PaidAt.UTC().Truncate(time.Microsecond)
	}

	paymentModel := model.BillPayment{
		ID:        r.idGenerator.NewID(),
		BillID:    payment.BillID,
		Amount:    payment.Amount,
		WalletID:  optionalString(payment.WalletID),
		Status:    string(payment.Status),
		PaidAt:    paidAt,
		CreatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(&paymentModel).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "creating bill payment", "bill_payment", err, map[string]any{
			"bill_id": payment.BillID,
		})
	}

	created, err := r.GetByID(ctx, paymentModel.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errs.ErrIntegrity
	}
	return created, nil
}

// GetByID retrieves a payment by ID
func (r *BillPaymentRepository) GetByID(ctx context.Context, id string) (*entity.BillPayment, error) {
	var paymentModel model.BillPayment
	result := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&paymentModel)
	if result.Error != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting bill payment", "bill_payment", result.Error, map[string]any{
			"payment_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	payment := billPaymentToEntity(&paymentModel)
	return &payment, nil
}

// ListByBill returns the payments of a bill, most recent first
func (r *BillPaymentRepository) ListByBill(ctx context.Context, billID string) ([]entity.BillPayment, error) {
	var models []model.BillPayment
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("paid_at DESC, created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing bill payments", "bill_payment", err, map[string]any{
			"bill_id": billID,
		})
	}

	payments := make([]entity.BillPayment, 0, len(models))
	for i := range models {
		payments = append(payments, billPaymentToEntity(&models[i]))
	}
	return payments, nil
}
