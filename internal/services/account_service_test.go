package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/model"
)

type fakeAccountAPI struct {
	account      model.Account
	customer     model.Customer
	accountUpds  []grubngo.AccountUpdate
	customerUpds []grubngo.CustomerUpdate
}

func (f *fakeAccountAPI) Account(_ context.Context, _ int64) (model.Account, error) {
	return f.account, nil
}

func (f *fakeAccountAPI) UpdateAccount(_ context.Context, _ int64, upd grubngo.AccountUpdate) error {
	f.accountUpds = append(f.accountUpds, upd)
	return nil
}

func (f *fakeAccountAPI) Customer(_ context.Context, _ int64) (model.Customer, error) {
	return f.customer, nil
}

func (f *fakeAccountAPI) UpdateCustomer(_ context.Context, _ int64, upd grubngo.CustomerUpdate) error {
	f.customerUpds = append(f.customerUpds, upd)
	return nil
}

func TestAccountService_ProfileBundlesBothRecords(t *testing.T) {
	api := &fakeAccountAPI{
		account:  model.Account{AccountID: 2, Email: "a@b.com", Role: "CUSTOMER"},
		customer: model.Customer{CustomerID: 2, CustomerName: "Ada"},
	}
	svc := NewAccountService(api)

	profile, err := svc.Profile(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Account.Email)
	assert.Equal(t, "Ada", profile.Customer.CustomerName)
}

func TestAccountService_UpdateOnlyChangedFields(t *testing.T) {
	api := &fakeAccountAPI{}
	svc := NewAccountService(api)

	err := svc.UpdateProfile(context.Background(), 2, ProfileUpdate{Email: "new@b.com"})
	require.NoError(t, err)
	assert.Len(t, api.accountUpds, 1)
	assert.Empty(t, api.customerUpds)

	err = svc.UpdateProfile(context.Background(), 2, ProfileUpdate{CustomerName: "Grace"})
	require.NoError(t, err)
	assert.Len(t, api.accountUpds, 1)
	assert.Len(t, api.customerUpds, 1)
	assert.Equal(t, "Grace", api.customerUpds[0].CustomerName)
}

func TestAccountService_EmptyUpdateRejected(t *testing.T) {
	api := &fakeAccountAPI{}
	svc := NewAccountService(api)

	err := svc.UpdateProfile(context.Background(), 2, ProfileUpdate{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, api.accountUpds)
	assert.Empty(t, api.customerUpds)
}
