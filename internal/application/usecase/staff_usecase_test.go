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

const staffTestUser = "00000000-0000-0000-0000-000000000001"

func newStaffUC() *usecase.StaffUseCase {
	return usecase.NewStaffUseCase(memory.NewStaffRepository())
}

func strPtr(s string) *string { return &s }

func TestStaffAdd_StatusDefaultsToActive(t *testing.T) {
	uc := newStaffUC()
	out, err := uc.Add(staffTestUser, dto.AddStaffRequest{Name: "Ravi", Role: "Cashier"})
	require.NoError(t, err)
	assert.Equal(t, "Active", out.Status)
}

func TestStaffAdd_RejectsUnknownStatus(t *testing.T) {
	uc := newStaffUC()
	_, err := uc.Add(staffTestUser, dto.AddStaffRequest{Name: "Ravi", Role: "Cashier", Status: "Retired"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaffUpdate_StatusTransition(t *testing.T) {
	uc := newStaffUC()
	created, err := uc.Add(staffTestUser, dto.AddStaffRequest{Name: "Ravi", Role: "Cashier"})
	require.NoError(t, err)

	out, err := uc.Update(staffTestUser, created.ID, dto.UpdateStaffRequest{Status: strPtr("On Leave")})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "On Leave", out.Status)

	_, err = uc.Update(staffTestUser, created.ID, dto.UpdateStaffRequest{Status: strPtr("Gone")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaffUpdate_UnknownIDReturnsNil(t *testing.T) {
	uc := newStaffUC()
	out, err := uc.Update(staffTestUser, "missing", dto.UpdateStaffRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}
