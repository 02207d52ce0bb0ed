package repository

import (
	"testing"
	"time"

	"github.com/fleetops-api/internal/constants"
	"github.com/fleetops-api/internal/models"
)

func createTestIncident(t *testing.T, repo *GormIncidentRepository, driverID uint, incidentType string, resolved bool) *models.Incident {
	t.Helper()
	incident := &models.Incident{
		DriverID:     driverID,
		IncidentType: incidentType,
		Severity:     constants.IncidentSeverityMinor,
		Description:  "test incident",
		Date:         time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		Location:     "Springfield, IL",
		Resolved:     resolved,
	}
	if err := repo.Create(incident); err != nil {
		t.Fatalf("create incident failed: %v", err)
	}
	return incident
}

func TestIncidentRepositoryResolvedFilter(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_incident_resolved")
	repo := NewIncidentRepository(db)

	createTestIncident(t, repo, 1, constants.IncidentTypeDelay, true)
	createTestIncident(t, repo, 1, constants.IncidentTypeAccident, false)
	createTestIncident(t, repo, 2, constants.IncidentTypeDelay, false)

	resolved := true
	incidents, total, err := repo.List(IncidentListFilter{Resolved: &resolved})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(incidents) != 1 {
		t.Fatalf("resolved filter: got %d/%d, want 1/1", len(incidents), total)
	}
	if !incidents[0].Resolved {
		t.Error("resolved filter returned an unresolved incident")
	}

	unresolved := false
	_, total, err = repo.List(IncidentListFilter{Resolved: &unresolved})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Errorf("unresolved filter: got %d, want 2", total)
	}

	// Nil pointer means no filtering on resolution.
	_, total, err = repo.List(IncidentListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Errorf("no filter: got %d, want 3", total)
	}
}

func TestIncidentRepositoryTypeAndDriverFilters(t *testing.T) {
	db := openRepositoryTestDB(t, "repo_incident_type")
	repo := NewIncidentRepository(db)

	createTestIncident(t, repo, 1, constants.IncidentTypeDelay, false)
	createTestIncident(t, repo, 1, constants.IncidentTypeAccident, false)
	createTestIncident(t, repo, 2, constants.IncidentTypeDelay, false)

	incidents, total, err := repo.List(IncidentListFilter{DriverID: 1, IncidentType: constants.IncidentTypeDelay})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(incidents) != 1 {
		t.Fatalf("combined filter: got %d/%d, want 1/1", len(incidents), total)
	}
	if incidents[0].DriverID != 1 || incidents[0].IncidentType != constants.IncidentTypeDelay {
		t.Error("combined filter returned the wrong incident")
	}
}
