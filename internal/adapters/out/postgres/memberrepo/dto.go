// Package memberrepo provides data transfer objects and mapping functions
// for member persistence.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberDTO represents the database structure for persisting members.
type MemberDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement"`
	Name    string     `gorm:"index"`
	Address AddressDTO `gorm:"embedded"`
}

// TableName specifies the database table name for members.
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents an embedded address within a row.
type AddressDTO struct {
	City    string
	Street  string
	Zipcode string
}

func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:   aggregate.ID(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			City:    aggregate.Address().City(),
			Street:  aggregate.Address().Street(),
			Zipcode: aggregate.Address().Zipcode(),
		},
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(dto.ID, dto.Name, address)
}
