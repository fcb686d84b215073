package model

import (
	"time"
)

// PartnerModel 合作伙伴（机构）模型
type PartnerModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name  string `json:"name" gorm:"not null" binding:"required"`
	Email string `json:"email" gorm:"not null;uniqueIndex" binding:"required,email"`

	// 机构类型，一个机构可以同时持有多个类型
	Types []StructureType `json:"types" gorm:"serializer:json" binding:"required,min=1"`

	// 账号是否启用
	Active bool `json:"active" gorm:"default:true"`
}

// StructureType 机构类型
type StructureType string

const (
	StructureAdministrationPublique StructureType = "administration_publique" // 公共行政机构
	StructureCollectivitePublique   StructureType = "collectivite_publique"   // 地方公共团体
	StructureSocieteCivile          StructureType = "societe_civile"          // 公民社会组织
	StructureSecteurPrive           StructureType = "secteur_prive"           // 私营部门
	StructurePTF                    StructureType = "ptf"                     // 技术与金融伙伴
	StructureInstitutionAcademique  StructureType = "institution_academique"  // 学术机构
)

// ValidStructureType 判断机构类型是否属于已知枚举
func ValidStructureType(t StructureType) bool {
	switch t {
	case StructureAdministrationPublique,
		StructureCollectivitePublique,
		StructureSocieteCivile,
		StructureSecteurPrive,
		StructurePTF,
		StructureInstitutionAcademique:
		return true
	}
	return false
}

// TableName 自定义表名
func (PartnerModel) TableName() string {
	return "partner"
}
