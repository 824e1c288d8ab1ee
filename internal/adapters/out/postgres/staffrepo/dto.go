// Package staffrepo provides the GORM-backed staff directory. Staff records
// are reference data: they are seeded and updated administratively, and the
// order pipeline only ever reads them.
package staffrepo

import (
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for staff members.
type StaffDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role int `gorm:"index"`
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff member to its database representation.
func fromDomain(member *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:   member.ID().Bytes(),
		Name: member.Name(),
		Role: int(member.Role()),
	}
}

// toDomain converts a database DTO to a staff member.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(id, dto.Name, staff.Role(dto.Role))
}
