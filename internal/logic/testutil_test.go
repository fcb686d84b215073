package logic

import (
	"testing"
	"time"

	"github.com/blues/vds/internal/model"
	"github.com/blues/vds/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 创建内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestPartner(t *testing.T, db *gorm.DB, types ...model.StructureType) *model.PartnerModel {
	t.Helper()
	if len(types) == 0 {
		types = []model.StructureType{model.StructureSocieteCivile}
	}
	partner := &model.PartnerModel{
		Name:   "ONG Espoir",
		Email:  "contact@espoir.org",
		Types:  types,
		Active: true,
	}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("failed to create test partner: %v", err)
	}
	return partner
}

func createTestProject(t *testing.T, db *gorm.DB, partnerId int64, status model.ProjectStatus, required, current int) *model.ProjectModel {
	t.Helper()
	now := time.Now()
	project := &model.ProjectModel{
		Title:              "Appui scolaire",
		PartnerId:          partnerId,
		RequiredVolunteers: required,
		CurrentVolunteers:  current,
		StartDate:          now.AddDate(0, 0, -7),
		EndDate:            now.AddDate(0, 1, 0),
		Status:             status,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

func createTestVolunteer(t *testing.T, db *gorm.DB) *model.VolunteerModel {
	t.Helper()
	volunteer := &model.VolunteerModel{
		Name:   "Awa Diallo",
		Email:  "awa.diallo@example.org",
		Status: model.VolunteerStatusWaiting,
	}
	if err := db.Create(volunteer).Error; err != nil {
		t.Fatalf("failed to create test volunteer: %v", err)
	}
	return volunteer
}

func createTestCandidature(t *testing.T, db *gorm.DB, projectId, volunteerId int64) *model.CandidatureModel {
	t.Helper()
	candidature := &model.CandidatureModel{
		ProjectId:     projectId,
		VolunteerId:   volunteerId,
		Name:          "Awa Diallo",
		Email:         "awa.diallo@example.org",
		Phone:         "+221770000000",
		RequestedRole: "Enseignante",
		Status:        model.CandidatureStatusPending,
	}
	if err := db.Create(candidature).Error; err != nil {
		t.Fatalf("failed to create test candidature: %v", err)
	}
	return candidature
}
