package staffrepo

import (
	"context"
	"errors"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/staff"
	"hydrohub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffDirectory implements the StaffDirectory port using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a new GORM staff directory.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// Add saves a new staff member. Not part of the directory port; used for
// seeding and administration.
func (r *GormStaffDirectory) Add(ctx context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a staff member by ID.
func (r *GormStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByRole retrieves all staff members with the given role, sorted by name.
func (r *GormStaffDirectory) FindByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "role = ?", int(role)).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
