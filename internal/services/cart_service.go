package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// taxRate is the fixed 8.25% applied to every order.
var taxRate = decimal.New(825, -4)

// CartService holds the in-progress selection for a single restaurant.
// Lines keep insertion order; derived totals are recomputed on every read,
// never cached.
type CartService struct {
	mu    sync.Mutex
	lines []model.CartLine
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add puts one more of item in the cart: an existing line gains quantity 1,
// otherwise a new line is appended. Items from a different restaurant than
// the cart's current one are rejected.
func (s *CartService) Add(item model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) > 0 && s.lines[0].Item.RestaurantID != item.RestaurantID {
		return ErrRestaurantMismatch
	}
	for i := range s.lines {
		if s.lines[i].Item.MenuItemID == item.MenuItemID {
			s.lines[i].Quantity++
			return nil
		}
	}
	s.lines = append(s.lines, model.CartLine{Item: item, Quantity: 1})
	return nil
}

// Remove deletes the matching line; unknown ids are a no-op.
func (s *CartService) Remove(menuItemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Item.MenuItemID == menuItemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity, clamping anything below 1 up to 1.
// Unknown ids are a no-op.
func (s *CartService) SetQuantity(menuItemID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Item.MenuItemID == menuItemID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy in insertion order.
func (s *CartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// RestaurantID is derived from the first line; false when the cart is empty.
func (s *CartService) RestaurantID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return 0, false
	}
	return s.lines[0].Item.RestaurantID, true
}

func (s *CartService) Subtotal() decimal.Decimal {
	return subtotalOf(s.Lines())
}

func (s *CartService) Tax() decimal.Decimal {
	return s.Subtotal().Mul(taxRate)
}

func (s *CartService) Total() decimal.Decimal {
	sub := s.Subtotal()
	return sub.Add(sub.Mul(taxRate))
}

// View renders lines and totals for the UI, money as two-decimal strings.
func (s *CartService) View() model.CartView {
	lines := s.Lines()
	sub := subtotalOf(lines)
	tax := sub.Mul(taxRate)
	return model.CartView{
		Lines:    lines,
		Subtotal: sub.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    sub.Add(tax).StringFixed(2),
	}
}

func subtotalOf(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}
