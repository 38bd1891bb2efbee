package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"addis-kitchen/internal/cart"
	"addis-kitchen/internal/domain"
	"addis-kitchen/internal/mocks"
	"addis-kitchen/internal/service"
)

func pickupCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:      "Alice",
		Email:     "alice@example.com",
		OrderType: domain.Pickup,
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	tests := []struct {
		name     string
		fill     func(store *cart.Store)
		customer domain.CustomerInfo
		wantErr  error
	}{
		{
			name:     "empty cart",
			fill:     func(*cart.Store) {},
			customer: pickupCustomer(),
			wantErr:  service.ErrEmptyCart,
		},
		{
			name: "missing name",
			fill: func(store *cart.Store) {
				store.AddItem(domain.MenuItem{ID: "a", Name: "Doro Wot", Price: 18.99})
			},
			customer: domain.CustomerInfo{Email: "alice@example.com", OrderType: domain.Pickup},
			wantErr:  service.ErrMissingField,
		},
		{
			name: "missing email",
			fill: func(store *cart.Store) {
				store.AddItem(domain.MenuItem{ID: "a", Name: "Doro Wot", Price: 18.99})
			},
			customer: domain.CustomerInfo{Name: "Alice", OrderType: domain.Pickup},
			wantErr:  service.ErrMissingField,
		},
		{
			name: "invalid order type",
			fill: func(store *cart.Store) {
				store.AddItem(domain.MenuItem{ID: "a", Name: "Doro Wot", Price: 18.99})
			},
			customer: domain.CustomerInfo{Name: "Alice", Email: "alice@example.com", OrderType: "dine_in"},
			wantErr:  service.ErrInvalidOrderType,
		},
		{
			name: "delivery without address",
			fill: func(store *cart.Store) {
				store.AddItem(domain.MenuItem{ID: "a", Name: "Doro Wot", Price: 18.99})
			},
			customer: domain.CustomerInfo{Name: "Alice", Email: "alice@example.com", OrderType: domain.Delivery},
			wantErr:  service.ErrMissingDeliveryAddress,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			carts := cart.NewManager()
			testCase.fill(carts.Session("s1"))

			svc := service.NewOrderService(carts, nil, repo, nil, nil)

			orderID, err := svc.Submit(context.Background(), "s1", testCase.customer)

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, orderID)
			// No expectations were registered: any persistence call fails the test.
		})
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	events := mocks.NewEventPublisher(t)
	carts := cart.NewManager()

	store := carts.Session("s1")
	store.AddItem(domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99})
	store.AddItem(domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99})
	store.AddItem(domain.MenuItem{ID: "combo", Name: "Vegetarian Combo", Price: 15.99})

	repo.On("InsertOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			order.ID = "ord-1"

			assert.Equal(t, domain.OrderPending, order.Status)
			assert.InDelta(t, 2*18.99+15.99, order.TotalAmount, 0.001)
		}).
		Return(nil).Once()
	repo.On("InsertOrderItems", mock.Anything, "ord-1", mock.MatchedBy(func(items []domain.OrderItem) bool {
		return len(items) == 2 &&
			items[0].MenuItemID == "doro" && items[0].Quantity == 2 && items[0].Price == 18.99 &&
			items[1].MenuItemID == "combo" && items[1].Quantity == 1
	})).Return(nil).Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCreated && e.EntityID == "ord-1"
	})).Return(nil).Once()

	svc := service.NewOrderService(carts, nil, repo, events, nil)

	orderID, err := svc.Submit(context.Background(), "s1", pickupCustomer())

	assert.NoError(t, err)
	assert.Equal(t, "ord-1", orderID)
	assert.Empty(t, store.Lines(), "cart must be cleared after a successful order")
}

func TestSubmitOrderPartialFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	carts := cart.NewManager()

	store := carts.Session("s1")
	store.AddItem(domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99})

	repo.On("InsertOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = "ord-2" }).
		Return(nil).Once()
	repo.On("InsertOrderItems", mock.Anything, "ord-2", mock.Anything).
		Return(errors.New("connection reset")).Once()

	svc := service.NewOrderService(carts, nil, repo, nil, nil)

	orderID, err := svc.Submit(context.Background(), "s1", pickupCustomer())

	assert.ErrorIs(t, err, service.ErrPartialOrder)
	assert.Equal(t, "ord-2", orderID, "the created order id is surfaced with the failure")

	var partial *service.PartialOrderError
	assert.ErrorAs(t, err, &partial)
	assert.Equal(t, "ord-2", partial.OrderID)

	assert.NotEmpty(t, store.Lines(), "cart is not cleared on partial failure")
}

func TestSubmitOrderInsertFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	carts := cart.NewManager()
	carts.Session("s1").AddItem(domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99})

	repo.On("InsertOrder", mock.Anything, mock.Anything).Return(errors.New("down")).Once()

	svc := service.NewOrderService(carts, nil, repo, nil, nil)

	orderID, err := svc.Submit(context.Background(), "s1", pickupCustomer())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrPartialOrder)
	assert.Empty(t, orderID)
	assert.NotEmpty(t, carts.Session("s1").Lines())
}

func TestAddToCartSnapshotsPrice(t *testing.T) {
	menuRepo := mocks.NewMenuRepository(t)
	orderRepo := mocks.NewOrderRepository(t)
	carts := cart.NewManager()

	menuRepo.On("GetMenuItem", mock.Anything, "doro").
		Return(&domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99, Available: true}, nil).Once()

	menuSvc := service.NewMenuService(menuRepo, nil)
	svc := service.NewOrderService(carts, menuSvc, orderRepo, nil, nil)

	totals, err := svc.AddToCart(context.Background(), "s1", "doro")
	assert.NoError(t, err)
	assert.Equal(t, 1, totals.ItemCount)

	lines := carts.Session("s1").Lines()
	assert.Equal(t, 18.99, lines[0].Price)
}

func TestAddToCartUnavailableItem(t *testing.T) {
	menuRepo := mocks.NewMenuRepository(t)
	orderRepo := mocks.NewOrderRepository(t)
	carts := cart.NewManager()

	menuRepo.On("GetMenuItem", mock.Anything, "doro").
		Return(&domain.MenuItem{ID: "doro", Name: "Doro Wot", Price: 18.99, Available: false}, nil).Once()

	menuSvc := service.NewMenuService(menuRepo, nil)
	svc := service.NewOrderService(carts, menuSvc, orderRepo, nil, nil)

	_, err := svc.AddToCart(context.Background(), "s1", "doro")
	assert.ErrorIs(t, err, service.ErrItemUnavailable)
	assert.Empty(t, carts.Session("s1").Lines())
}
