package services

import (
	"log"
	"sort"

	"butik/internal/apperr"
	"butik/internal/models"
	"butik/internal/repositories"
	"butik/pkg/gateway"
	"butik/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CheckoutService converts a mutable cart into an immutable paid order.
// Initiation is an optimistic, lock-free preflight; the inventory invariant
// is enforced once more under row locks when the payment callback verifies.
type CheckoutService struct {
	cartService *CartService
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
	userRepo    repositories.UserRepository
	txManager   repositories.TxManager
	gw          gateway.Client
	gatewayKey  string
	secret      string
	mqClient    *rabbitmq.Client // nil skips event publication
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	cartService *CartService,
	productRepo repositories.ProductRepository,
	stockRepo repositories.StockRepository,
	userRepo repositories.UserRepository,
	txManager repositories.TxManager,
	gw gateway.Client,
	gatewayKey string,
	secret string,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		gw:          gw,
		gatewayKey:  gatewayKey,
		secret:      secret,
		mqClient:    mqClient,
	}
}

// BillingContact is the address snapshot handed to the storefront for the
// payment form.
type BillingContact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
}

// CheckoutResponse is the client-facing payment handle.
type CheckoutResponse struct {
	OrderID        string         `json:"order_id"` // gateway transaction id
	GatewayKey     string         `json:"gateway_key"`
	Amount         int64          `json:"amount"` // paisa
	BillingContact BillingContact `json:"billing_contact"`
}

// Initiate validates the claimed total against the reconciled cart, opens a
// gateway transaction for the authoritative amount and returns the payment
// handle. Nothing is persisted locally: an abandoned payment needs no
// cleanup. Stock is only prechecked here, without locking, so concurrent
// shoppers are never blocked by a preflight.
func (s *CheckoutService) Initiate(userID string, claimedAmount int64) (*CheckoutResponse, error) {
	address, err := s.userRepo.GetAddressByUser(userID)
	if err != nil {
		return nil, apperr.NotFound("address not found for user")
	}

	_, items, _, err := s.cartService.Reconcile(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	var total int64
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		total += product.Price * int64(item.Quantity)
	}
	if claimedAmount != total {
		return nil, apperr.AmountMismatch(claimedAmount, total)
	}

	// Unlocked precheck. Stock can still vanish before verification, which
	// is why VerifyPayment re-checks under lock.
	for _, item := range items {
		available := 0
		if stock, err := s.stockRepo.Get(item.ProductID, item.Size); err == nil {
			available = stock.Quantity
		}
		if item.Quantity > available {
			return nil, apperr.InsufficientStock(item.ProductID, item.Size, item.Quantity, available)
		}
	}

	gwOrder, err := s.gw.CreateOrder(total, "INR", uuid.New().String())
	if err != nil {
		return nil, err
	}

	return &CheckoutResponse{
		OrderID:    gwOrder.ID,
		GatewayKey: s.gatewayKey,
		Amount:     gwOrder.Amount,
		BillingContact: BillingContact{
			Name:        address.FirstName + " " + address.LastName,
			PhoneNumber: address.PhoneNumber,
			AddressLine: address.AddressLine,
			City:        address.City,
			State:       address.State,
			PostalCode:  address.PostalCode,
		},
	}, nil
}

// VerifyPayment authenticates the gateway callback and, in a single atomic
// transaction, materializes the order, debits the ledger and clears the
// cart. Any stock shortfall aborts the whole transaction: no order, no
// partial debit, cart intact.
func (s *CheckoutService) VerifyPayment(userID, gatewayOrderID, paymentID, signature string) (*models.Order, error) {
	if !gateway.VerifySignature(s.secret, gatewayOrderID, paymentID, signature) {
		return nil, apperr.InvalidSignature()
	}

	address, err := s.userRepo.GetAddressByUser(userID)
	if err != nil {
		return nil, apperr.NotFound("address not found for user")
	}

	var created *models.Order
	err = s.txManager.InTx(func(r repositories.RepoSet) error {
		cart, err := r.Carts.GetOrCreateByUser(userID)
		if err != nil {
			return err
		}
		items, err := r.Carts.GetItems(cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.Validation("cart is empty")
		}

		// Lock ledger rows in a globally consistent order so concurrent
		// checkouts over overlapping keys cannot deadlock.
		sort.Slice(items, func(i, j int) bool {
			if items[i].ProductID != items[j].ProductID {
				return items[i].ProductID < items[j].ProductID
			}
			return items[i].Size < items[j].Size
		})

		var total int64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			stock, err := r.Stock.GetForUpdate(item.ProductID, item.Size)
			if err != nil {
				return apperr.InsufficientStock(item.ProductID, item.Size, item.Quantity, 0)
			}
			if stock.Quantity < item.Quantity {
				return apperr.InsufficientStock(item.ProductID, item.Size, item.Quantity, stock.Quantity)
			}
			product, err := r.Products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Size:        item.Size,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
			total += product.Price * int64(item.Quantity)
		}

		order := &models.Order{
			ID:               uuid.New().String(),
			UserID:           userID,
			Items:            orderItems,
			TotalAmount:      total,
			GatewayOrderID:   gatewayOrderID,
			PaymentID:        paymentID,
			PaymentSignature: signature,
			DeliveryStatus:   models.DeliveryPending,
			RecipientName:    address.FirstName + " " + address.LastName,
			PhoneNumber:      address.PhoneNumber,
			AddressLine:      address.AddressLine,
			City:             address.City,
			State:            address.State,
			PostalCode:       address.PostalCode,
		}
		if err := r.Orders.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := r.Stock.Debit(item.ProductID, item.Size, item.Quantity); err != nil {
				return err
			}
		}
		if err := r.Carts.Clear(cart.ID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		ev := rabbitmq.OrderCreatedEvent{
			OrderID:     created.ID,
			UserID:      created.UserID,
			TotalAmount: created.TotalAmount,
			ItemCount:   len(created.Items),
		}
		if err := s.mqClient.PublishOrderCreated(ev); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", created.ID, err)
		}
	}

	return created, nil
}
