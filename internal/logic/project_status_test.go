package logic

import (
	"errors"
	"testing"

	"github.com/blues/vds/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to model.ProjectStatus
		want     bool
	}{
		{model.ProjectStatusPending, model.ProjectStatusActive, true},
		{model.ProjectStatusPending, model.ProjectStatusClosed, true},
		{model.ProjectStatusActive, model.ProjectStatusClosed, true},
		{model.ProjectStatusActive, model.ProjectStatusPending, false},
		{model.ProjectStatusClosed, model.ProjectStatusPending, false},
		{model.ProjectStatusClosed, model.ProjectStatusActive, false},
		// 同状态流转是合法的空操作
		{model.ProjectStatusPending, model.ProjectStatusPending, true},
		{model.ProjectStatusClosed, model.ProjectStatusClosed, true},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	db := newTestDB(t)
	partner := createTestPartner(t, db)
	project := createTestProject(t, db, partner.Id, model.ProjectStatusPending, 2, 0)
	projectLogic := NewProjectLogic(db)

	if err := projectLogic.Transition(project, model.ProjectStatusActive); err != nil {
		t.Fatalf("pending -> active failed: %v", err)
	}
	if project.PublishedAt == nil {
		t.Error("entering active should stamp publish date")
	}
	firstPublish := *project.PublishedAt

	if err := projectLogic.Transition(project, model.ProjectStatusClosed); err != nil {
		t.Fatalf("active -> closed failed: %v", err)
	}
	if project.ClosedAt == nil {
		t.Error("entering closed should stamp closure date")
	}
	if !project.PublishedAt.Equal(firstPublish) {
		t.Error("publish date should not change after first activation")
	}

	// 落库验证
	var stored model.ProjectModel
	if err := db.First(&stored, project.Id).Error; err != nil {
		t.Fatalf("failed to reload project: %v", err)
	}
	if stored.Status != model.ProjectStatusClosed {
		t.Errorf("stored status = %s, want closed", stored.Status)
	}
	if stored.ClosedAt == nil {
		t.Error("closure date not persisted")
	}
}

func TestTransitionClosedIsTerminal(t *testing.T) {
	db := newTestDB(t)
	partner := createTestPartner(t, db)
	project := createTestProject(t, db, partner.Id, model.ProjectStatusClosed, 2, 0)
	projectLogic := NewProjectLogic(db)

	if err := projectLogic.Transition(project, model.ProjectStatusActive); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("closed -> active: got %v, want ErrIllegalTransition", err)
	}
	if err := projectLogic.Transition(project, model.ProjectStatusPending); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("closed -> pending: got %v, want ErrIllegalTransition", err)
	}
	// 同状态是幂等空操作
	if err := projectLogic.Transition(project, model.ProjectStatusClosed); err != nil {
		t.Errorf("closed -> closed should be a no-op, got %v", err)
	}
}

func TestSameStateTransitionDoesNotWrite(t *testing.T) {
	db := newTestDB(t)
	partner := createTestPartner(t, db)
	project := createTestProject(t, db, partner.Id, model.ProjectStatusActive, 2, 0)
	projectLogic := NewProjectLogic(db)

	if err := projectLogic.Transition(project, model.ProjectStatusActive); err != nil {
		t.Fatalf("active -> active should succeed, got %v", err)
	}
	if project.PublishedAt != nil {
		t.Error("same-state transition should not stamp publish date")
	}
}

func TestUpdateProjectRejectedWhenClosed(t *testing.T) {
	db := newTestDB(t)
	partner := createTestPartner(t, db)
	project := createTestProject(t, db, partner.Id, model.ProjectStatusClosed, 2, 0)
	projectLogic := NewProjectLogic(db)

	err := projectLogic.UpdateProject(project.Id, map[string]interface{}{"title": "Nouveau titre"})
	if !errors.Is(err, ErrProjectClosed) {
		t.Errorf("updating closed project: got %v, want ErrProjectClosed", err)
	}
}

func TestValidateThenCloseProject(t *testing.T) {
	db := newTestDB(t)
	partner := createTestPartner(t, db)
	project := createTestProject(t, db, partner.Id, model.ProjectStatusPending, 2, 0)
	projectLogic := NewProjectLogic(db)

	validated, err := projectLogic.ValidateProject(project.Id)
	if err != nil {
		t.Fatalf("ValidateProject failed: %v", err)
	}
	if validated.Status != model.ProjectStatusActive {
		t.Errorf("status = %s, want active", validated.Status)
	}

	closed, err := projectLogic.CloseProject(project.Id)
	if err != nil {
		t.Fatalf("CloseProject failed: %v", err)
	}
	if closed.Status != model.ProjectStatusClosed {
		t.Errorf("status = %s, want closed", closed.Status)
	}
}
