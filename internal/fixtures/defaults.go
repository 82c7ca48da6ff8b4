// Package fixtures holds the default dataset loaded when the backing store
// has no saved state for a collection.
package fixtures

import (
	"github.com/protrack-ops/floor-backend-go/internal/domain/attendance"
	"github.com/protrack-ops/floor-backend-go/internal/domain/employee"
	"github.com/protrack-ops/floor-backend-go/internal/domain/inventory"
	"github.com/protrack-ops/floor-backend-go/internal/domain/leader"
	"github.com/protrack-ops/floor-backend-go/internal/domain/management"
	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
	"github.com/protrack-ops/floor-backend-go/internal/domain/schedule"
)

func strPtr(s string) *string { return &s }

// DefaultManagementTeam is the plant hierarchy shown in the directory.
func DefaultManagementTeam() []management.Member {
	return []management.Member{
		{
			ID:       "m1",
			Name:     "Eng. Karim Al-Mansour",
			Role:     "Plant Director",
			ImageURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400",
			Motto:    "Quality is everyone's job.",
			Type:     management.TypeDirector,
		},
		{
			ID:       "m2",
			Name:     "Sarah Jenkins",
			Role:     "Production Coordinator",
			ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400",
			Motto:    "Plan the shift, run the plan.",
			Type:     management.TypeCoordinator,
		},
		{
			ID:       "m3",
			Name:     "Marco Rossi",
			Role:     "Shift Chief",
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
			Motto:    "Safety first, always.",
			Type:     management.TypeShiftChief,
		},
	}
}

// DefaultLeaders is the starter team-leader roster. Serial numbers double as
// login credentials.
func DefaultLeaders() []leader.TeamLeader {
	return []leader.TeamLeader{
		{
			ID:           "l1",
			Name:         "Ahmed Ali",
			Role:         "Team Leader - Assembly",
			Email:        "ahmed.ali@protrack.example",
			SerialNumber: "1111",
			WhatsApp:     strPtr("+201112223334"),
			ImageURL:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Status:       leader.StatusActive,
		},
		{
			ID:           "l2",
			Name:         "Sara Mohamed",
			Role:         "Team Leader - Quality",
			Email:        "sara.mohamed@protrack.example",
			SerialNumber: "2222",
			WhatsApp:     strPtr("+201223334445"),
			ImageURL:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
			Status:       leader.StatusActive,
		},
		{
			ID:           "l3",
			Name:         "Yassin Mahmoud",
			Role:         "Team Leader - Packaging",
			Email:        "yassin.mahmoud@protrack.example",
			SerialNumber: "3333",
			WhatsApp:     strPtr("+201334445556"),
			ImageURL:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
			Status:       leader.StatusActive,
		},
	}
}

// DefaultEmployees covers each supervisor with at least one report.
func DefaultEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "101", Name: "Mohamed Hassan", Department: "Cable Assembly", Role: strPtr("Operator"), SupervisorID: strPtr("l1")},
		{ID: "102", Name: "Youssef Khaled", Department: "Cable Assembly", Role: strPtr("Operator"), SupervisorID: strPtr("l1")},
		{ID: "103", Name: "Fatima Zahra", Department: "Quality", Role: strPtr("Inspector"), SupervisorID: strPtr("l2")},
		{ID: "104", Name: "Omar Yassin", Department: "Packaging", Role: strPtr("Operator"), SupervisorID: strPtr("l3")},
	}
}

// DefaultAttendance starts empty; every missing record reads as absent.
func DefaultAttendance() []attendance.Record {
	return []attendance.Record{}
}

// DefaultProduction starts empty.
func DefaultProduction() []production.Entry {
	return []production.Entry{}
}

// DefaultInventory stocks the floor with a minimal set of materials.
func DefaultInventory() []inventory.Item {
	return []inventory.Item{
		{ID: "i1", Name: "Copper Wire 2.5mm", Quantity: 120, Unit: "spool", MinThreshold: 40},
		{ID: "i2", Name: "PVC Insulation", Quantity: 35, Unit: "roll", MinThreshold: 50},
		{ID: "i3", Name: "Terminal Connectors", Quantity: 800, Unit: "pcs", MinThreshold: 200},
	}
}

// DefaultSchedule starts empty.
func DefaultSchedule() []schedule.Entry {
	return []schedule.Entry{}
}
