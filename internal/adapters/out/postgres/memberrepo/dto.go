// Package memberrepo persists member shops with their activity regions and
// regional product prices.
package memberrepo

import (
	"time"

	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/member"

	"github.com/shopspring/decimal"
)

type MemberDTO struct {
	ID              columns.UUID `gorm:"primaryKey"`
	LoginID         string       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name            string       `gorm:"type:varchar(50);not null"`
	Mobile          string       `gorm:"type:varchar(20);not null"`
	BusinessNumber  string       `gorm:"type:varchar(12);not null;uniqueIndex"`
	CorpName        string       `gorm:"type:varchar(100);not null;index"`
	CeoName         string       `gorm:"type:varchar(50)"`
	CompanyAddress  string       `gorm:"type:varchar(500)"`
	Status          string       `gorm:"type:varchar(20);not null"`
	ApprovalStatus  string       `gorm:"type:varchar(20);not null"`
	RejectionReason string       `gorm:"type:varchar(500)"`
	CreatedAt       time.Time    `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time    `gorm:"not null;autoUpdateTime:false"`

	ActivityRegions []ActivityRegionDTO `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	ProductPrices   []ProductPriceDTO   `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

func (MemberDTO) TableName() string {
	return "members"
}

// ActivityRegionDTO is keyed by (member, sido, sigungu) so saves upsert in place.
type ActivityRegionDTO struct {
	MemberID columns.UUID `gorm:"primaryKey"`
	Sido     string       `gorm:"primaryKey;type:varchar(50)"`
	Sigungu  string       `gorm:"primaryKey;type:varchar(50)"`
	Active   bool         `gorm:"not null"`
}

func (ActivityRegionDTO) TableName() string {
	return "member_activity_regions"
}

// ProductPriceDTO is keyed by (member, sido, sigungu, category).
type ProductPriceDTO struct {
	MemberID     columns.UUID    `gorm:"primaryKey"`
	Sido         string          `gorm:"primaryKey;type:varchar(50)"`
	Sigungu      string          `gorm:"primaryKey;type:varchar(50)"`
	CategoryName string          `gorm:"primaryKey;type:varchar(50)"`
	Price        decimal.Decimal `gorm:"type:decimal(12,0);not null"`
	Available    bool            `gorm:"not null"`
}

func (ProductPriceDTO) TableName() string {
	return "member_product_prices"
}

func fromDomain(m *member.Member) MemberDTO {
	id := columns.FromKernel(m.ID())
	profile := m.Profile()

	regions := make([]ActivityRegionDTO, 0, len(m.ActivityRegions()))
	for _, r := range m.ActivityRegions() {
		regions = append(regions, ActivityRegionDTO{
			MemberID: id,
			Sido:     r.Sido,
			Sigungu:  r.Sigungu,
			Active:   r.Active,
		})
	}

	prices := make([]ProductPriceDTO, 0, len(m.ProductPrices()))
	for _, p := range m.ProductPrices() {
		prices = append(prices, ProductPriceDTO{
			MemberID:     id,
			Sido:         p.Sido,
			Sigungu:      p.Sigungu,
			CategoryName: p.CategoryName,
			Price:        p.Price.Decimal(),
			Available:    p.Available,
		})
	}

	return MemberDTO{
		ID:              id,
		LoginID:         m.LoginID(),
		Name:            m.Name(),
		Mobile:          m.Mobile(),
		BusinessNumber:  profile.BusinessNumber,
		CorpName:        profile.CorpName,
		CeoName:         profile.CeoName,
		CompanyAddress:  profile.CompanyAddress,
		Status:          string(m.Status()),
		ApprovalStatus:  string(m.Approval()),
		RejectionReason: m.RejectionReason(),
		CreatedAt:       m.Audit().CreatedAt(),
		UpdatedAt:       m.Audit().UpdatedAt(),
		ActivityRegions: regions,
		ProductPrices:   prices,
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := dto.ID.Kernel()
	if err != nil {
		return nil, err
	}

	regions := make([]member.ActivityRegion, 0, len(dto.ActivityRegions))
	for _, r := range dto.ActivityRegions {
		regions = append(regions, member.ActivityRegion{Sido: r.Sido, Sigungu: r.Sigungu, Active: r.Active})
	}

	prices := make([]member.ProductPrice, 0, len(dto.ProductPrices))
	for _, p := range dto.ProductPrices {
		price, priceErr := kernel.MoneyFromDecimal(p.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		prices = append(prices, member.ProductPrice{
			Sido:         p.Sido,
			Sigungu:      p.Sigungu,
			CategoryName: p.CategoryName,
			Price:        price,
			Available:    p.Available,
		})
	}

	return member.RestoreMember(member.Snapshot{
		ID:      id,
		LoginID: dto.LoginID,
		Name:    dto.Name,
		Mobile:  dto.Mobile,
		Profile: member.BusinessProfile{
			BusinessNumber: dto.BusinessNumber,
			CorpName:       dto.CorpName,
			CeoName:        dto.CeoName,
			CompanyAddress: dto.CompanyAddress,
		},
		Status:          member.Status(dto.Status),
		Approval:        member.Approval(dto.ApprovalStatus),
		RejectionReason: dto.RejectionReason,
		Regions:         regions,
		Prices:          prices,
		Audit:           kernel.RestoreAudit(dto.CreatedAt, dto.UpdatedAt, false, "", nil),
	})
}
