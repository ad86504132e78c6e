package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/usecase"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/infrastructure/memory"
)

const supplierTestUser = "00000000-0000-0000-0000-000000000004"

func newSupplierUC() *usecase.SupplierUseCase {
	return usecase.NewSupplierUseCase(memory.NewSupplierRepository())
}

func TestSupplierAdd_RequiresNameAndCategory(t *testing.T) {
	uc := newSupplierUC()

	_, err := uc.Add(supplierTestUser, dto.AddSupplierRequest{Category: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(supplierTestUser, dto.AddSupplierRequest{Name: "Amul Distributor"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Add(supplierTestUser, dto.AddSupplierRequest{Name: "Amul Distributor", Category: "Dairy", Phone: "9876543210"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Amul Distributor", out.Name)
	assert.Equal(t, "9876543210", out.Phone)
}

func TestSupplierList_ScopedToUser(t *testing.T) {
	uc := newSupplierUC()
	_, err := uc.Add(supplierTestUser, dto.AddSupplierRequest{Name: "Amul Distributor", Category: "Dairy"})
	require.NoError(t, err)
	_, err = uc.Add("someone-else", dto.AddSupplierRequest{Name: "Parle Agency", Category: "Snacks"})
	require.NoError(t, err)

	out, err := uc.List(supplierTestUser)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Amul Distributor", out.Items[0].Name)
}

func TestSupplierUpdate_PatchesOnlyGivenFields(t *testing.T) {
	uc := newSupplierUC()
	created, err := uc.Add(supplierTestUser, dto.AddSupplierRequest{Name: "Amul Distributor", Category: "Dairy", Phone: "9876543210"})
	require.NoError(t, err)

	out, err := uc.Update(supplierTestUser, created.ID, dto.UpdateSupplierRequest{Phone: strPtr("9000000000")})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "9000000000", out.Phone)
	assert.Equal(t, "Amul Distributor", out.Name)
	assert.Equal(t, "Dairy", out.Category)
}

func TestSupplierUpdate_UnknownIDReturnsNil(t *testing.T) {
	uc := newSupplierUC()
	out, err := uc.Update(supplierTestUser, "missing", dto.UpdateSupplierRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSupplierDelete_Idempotent(t *testing.T) {
	uc := newSupplierUC()
	created, err := uc.Add(supplierTestUser, dto.AddSupplierRequest{Name: "Amul Distributor", Category: "Dairy"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(supplierTestUser, created.ID))
	require.NoError(t, uc.Delete(supplierTestUser, created.ID))

	out, err := uc.List(supplierTestUser)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
