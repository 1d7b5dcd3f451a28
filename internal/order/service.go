package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agrilink/farm-market-backend/internal/cart"
	"github.com/agrilink/farm-market-backend/internal/notify"
)

var (
	ErrMissingBuyerDetails = errors.New("buyer name, contact and address are required")
	ErrNoLocation          = errors.New("delivery address has not been resolved")
	ErrEmptyCart           = errors.New("cart is empty")
)

// Service provides business logic for orders: the checkout fan-out and the
// status workflow with its notification fan-out.
type Service struct {
	repo  Repository
	sms   notify.SMSGateway
	email notify.EmailSender
}

func NewService(repo Repository, sms notify.SMSGateway, email notify.EmailSender) *Service {
	return &Service{repo: repo, sms: sms, email: email}
}

// PlaceOrder writes one order row per cart line-item. The per-item creates
// run concurrently and are joined as a group: the first failure surfaces,
// already-dispatched siblings are not cancelled, and partial success is not
// rolled back. The caller clears the cart only when the error is nil.
func (s *Service) PlaceOrder(ctx context.Context, buyer BuyerDetails, loc *Location, items []cart.Item) ([]Order, error) {
	if buyer.Name == "" || buyer.Contact == "" || buyer.Address == "" {
		return nil, ErrMissingBuyerDetails
	}
	if loc == nil {
		return nil, ErrNoLocation
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if buyer.PaymentMethod != PaymentCOD && buyer.PaymentMethod != PaymentUPI {
		return nil, fmt.Errorf("unsupported payment method %q", buyer.PaymentMethod)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)

	var (
		g       errgroup.Group
		mu      sync.Mutex
		created = make([]Order, 0, len(items))
	)
	for _, item := range items {
		item := item
		g.Go(func() error {
			farmer := item.Farmer
			if farmer == "" {
				farmer = "Unknown"
			}
			ord, err := s.repo.Create(Order{
				BuyerID:       buyer.BuyerID,
				BuyerName:     buyer.Name,
				BuyerContact:  buyer.Contact,
				BuyerAddress:  buyer.Address,
				PaymentMethod: buyer.PaymentMethod,
				Crop:          item.Name,
				Farmer:        farmer,
				Location:      loc,
				Status:        StatusPending,
				Transport:     TransportNotAssigned,
				CreatedAt:     createdAt,
			})
			if err != nil {
				return err
			}
			mu.Lock()
			created = append(created, ord)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return created, err
}

// SetStatus overwrites the order's status and, on success, fans the update
// out to whichever contact channels were supplied. Channel failures are
// logged, never surfaced, and do not stop the other channel; calling twice
// with the same status sends twice.
func (s *Service) SetStatus(ctx context.Context, orderID, newStatus, buyerPhone, buyerEmail string) error {
	if orderID == "" || newStatus == "" {
		return errors.New("orderId and status are required")
	}

	if err := s.repo.UpdateStatus(orderID, newStatus); err != nil {
		return err
	}

	message := fmt.Sprintf("Order %s status updated to %q.", orderID, newStatus)
	if buyerPhone != "" && s.sms != nil {
		if _, err := s.sms.SendSMS(ctx, buyerPhone, message); err != nil {
			log.Printf("warning: sms notification for order %s failed: %v", orderID, err)
		}
	}
	if buyerEmail != "" && s.email != nil {
		if _, err := s.email.SendEmail(ctx, buyerEmail, "", message); err != nil {
			log.Printf("warning: email notification for order %s failed: %v", orderID, err)
		}
	}
	return nil
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByBuyer(buyerID int) ([]Order, error) {
	if buyerID <= 0 {
		return nil, errors.New("invalid buyer")
	}
	return s.repo.ListByBuyer(buyerID)
}

// List returns every order, for the supply-chain view.
func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

// AssignTransport records the transporter on an order. It is tracked
// separately from the status workflow and sends no notifications.
func (s *Service) AssignTransport(orderID, transport string) error {
	if orderID == "" || transport == "" {
		return errors.New("orderId and transport are required")
	}
	return s.repo.AssignTransport(orderID, transport)
}
