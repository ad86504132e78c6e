package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/soham-0510/vyapar-sathi-final/internal/application/dto"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/entity"
	"github.com/soham-0510/vyapar-sathi-final/internal/domain/repository"
)

// StaffUseCase CRUD over the user's staff.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase builds the use case.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Add creates a staff member. Status defaults to Active.
func (uc *StaffUseCase) Add(userID string, in dto.AddStaffRequest) (*dto.StaffResponse, error) {
	if in.Name == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StaffActive
	}
	if status != entity.StaffActive && status != entity.StaffOnLeave {
		return nil, domain.ErrInvalidInput
	}
	member := &entity.StaffMember{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Role:      in.Role,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(member); err != nil {
		return nil, err
	}
	return toStaffResponse(member), nil
}

// List returns the user's staff, newest first.
func (uc *StaffUseCase) List(userID string) (*dto.StaffListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toStaffResponse(m))
	}
	return &dto.StaffListResponse{Items: items}, nil
}

// Update patches the given fields.
func (uc *StaffUseCase) Update(userID, id string, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	member, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Role != nil {
		member.Role = *in.Role
	}
	if in.Phone != nil {
		member.Phone = *in.Phone
	}
	if in.Status != nil {
		if *in.Status != entity.StaffActive && *in.Status != entity.StaffOnLeave {
			return nil, domain.ErrInvalidInput
		}
		member.Status = *in.Status
	}
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toStaffResponse(member), nil
}

// Delete removes the staff member.
func (uc *StaffUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toStaffResponse(m *entity.StaffMember) *dto.StaffResponse {
	if m == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Phone:     m.Phone,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}
