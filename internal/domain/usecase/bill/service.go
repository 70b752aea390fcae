package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
)

// Service handles recurring bill schedules and payments
type Service struct {
	bills        persistence.BillRepository
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.BillUseCase = (*Service)(nil)

// NewBillService creates a new bill service
func NewBillService(
	bills persistence.BillRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		bills:        bills,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RollForward moves every active bill whose due date has passed to the
// first occurrence on or after the current day
func (s *Service) RollForward(ctx context.Context, now time.Time) (*usecase.RollForwardResult, error) {
	bills, err := s.bills.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.RollForwardResult{Checked: len(bills), Rolled: []entity.Bill{}}
	for _, b := range bills {
		due, changed := b.RolledDueDate(now)
		if !changed {
			continue
		}

		updated, err := s.bills.UpdateSchedule(ctx, b.ID, due)
		if err != nil {
			return nil, fmt.Errorf("failed to roll bill %s: %w", b.ID, err)
		}
		result.Rolled = append(result.Rolled, *updated)

		s.logger.Debug("Bill rolled forward", map[string]any{
			"bill_id":  b.ID,
			"from":     b.NextDueDate.Format(time.DateOnly),
			"next_due": due.Format(time.DateOnly),
		})
	}

	if len(result.Rolled) > 0 {
		s.logger.Info("Bills rolled forward", map[string]any{
			"checked": result.Checked,
			"rolled":  len(result.Rolled),
		})
	}
	return result, nil
}

// Pay records a payment and marks the bill paid in a single unit of work.
// A cleared payment drawn from a wallet also books an expense against it.
func (s *Service) Pay(ctx context.Context, req usecase.PayBillRequest) (*usecase.PayBillResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback bill payment", map[string]any{
					"error":   rbErr.Error(),
					"bill_id": req.BillID,
				})
			}
		}
	}()

	bills := s.uow.GetBillRepository(txCtx)
	b, err := bills.GetByID(txCtx, req.BillID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrBillNotFound, req.BillID)
	}

	payment, err := s.buildPayment(b, req)
	if err != nil {
		return nil, err
	}

	result := &usecase.PayBillResult{}
	if payment.Status == entity.PaymentCleared && payment.WalletID != nil {
		note := "Bill: " + b.Name
		result.Transaction, err = s.uow.GetTransactionRepository(txCtx).CreateAndApply(txCtx, entity.NewTransaction{
			Amount:     payment.Amount,
			Type:       entity.TransactionExpense,
			CategoryID: b.CategoryID,
			WalletID:   payment.WalletID,
			Note:       &note,
			OccurredAt: payment.PaidAt,
		})
		if err != nil {
			return nil, err
		}
	}

	result.Payment, err = s.uow.GetBillPaymentRepository(txCtx).Create(txCtx, payment)
	if err != nil {
		return nil, err
	}

	result.Bill, err = bills.SetPaid(txCtx, b.ID, true)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	s.logger.Info("Bill paid", map[string]any{
		"bill_id":    b.ID,
		"payment_id": result.Payment.ID,
		"amount":     entity.FormatAmount(result.Payment.Amount),
		"status":     string(result.Payment.Status),
		"request_id": coreport.RequestID(ctx),
	})
	return result, nil
}

// buildPayment fills the request's gaps from the bill's own defaults
func (s *Service) buildPayment(b *entity.Bill, req usecase.PayBillRequest) (entity.NewBillPayment, error) {
	amount := b.Amount
	if req.Amount != nil {
		parsed, err := entity.ParseAmount(*req.Amount)
		if err != nil {
			return entity.NewBillPayment{}, err
		}
		amount = parsed
	}

	walletID := b.WalletID
	if req.WalletID != nil && *req.WalletID != "" {
		walletID = req.WalletID
	}

	paidAt := req.PaidAt
	if paidAt == nil {
		now := s.timeProvider.Now()
		paidAt = &now
	}

	payment := entity.NewBillPayment{
		BillID:   b.ID,
		Amount:   amount,
		WalletID: walletID,
		Status:   entity.PaymentStatus(req.Status),
		PaidAt:   paidAt,
	}
	if err := payment.Validate(); err != nil {
		return entity.NewBillPayment{}, err
	}
	return payment, nil
}
