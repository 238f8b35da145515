package ui

import (
	"testing"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

func TestMaterialReloadUnderConfirmModalClosesIt(t *testing.T) {
	app := newTestApp(t)
	loginAs(t, app, api.RoleStaff)
	page := NewCourseVideosPage(app, 10)
	page.Update(courseMaterialsLoadedMsg{materials: []api.StudyMaterial{
		{ID: 3, Title: "Week 1 slides", FileType: "pdf"},
	}})

	page.Update(key("d"))
	if !page.confirming || page.confirmID != 3 {
		t.Fatalf("modal should target material 3, got confirming=%v id=%d", page.confirming, page.confirmID)
	}

	page.Update(courseMaterialsLoadedMsg{materials: nil})
	if page.confirming {
		t.Fatal("a reload must close the confirm modal")
	}

	_, cmd := page.Update(key("y"))
	if cmd != nil {
		t.Fatal("y after the modal closed must not produce a command")
	}
}
