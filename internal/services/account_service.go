package services

import (
	"context"
	"fmt"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
)

// AccountService backs the account page: load and edit the account and
// customer records for the signed-in user.
type AccountService struct {
	api AccountAPI
}

func NewAccountService(api AccountAPI) *AccountService {
	return &AccountService{api: api}
}

func (s *AccountService) Profile(ctx context.Context, accountID int64) (*model.Profile, error) {
	account, err := s.api.Account(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	customer, err := s.api.Customer(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	return &model.Profile{Account: account, Customer: customer}, nil
}

// ProfileUpdate holds the editable fields; empty means unchanged.
type ProfileUpdate struct {
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
}

// UpdateProfile issues an update only for fields that were supplied.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID int64, upd ProfileUpdate) error {
	if upd.Email == "" && upd.CustomerName == "" {
		return validationErr("nothing to update")
	}
	if upd.Email != "" {
		if err := s.api.UpdateAccount(ctx, accountID, grubngo.AccountUpdate{Email: upd.Email}); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
	}
	if upd.CustomerName != "" {
		if err := s.api.UpdateCustomer(ctx, accountID, grubngo.CustomerUpdate{CustomerName: upd.CustomerName}); err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
	}
	return nil
}
