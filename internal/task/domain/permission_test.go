package domain

import "testing"

func TestEffectivePermission_OwnerAndNone(t *testing.T) {
	task := &Task{ID: "t1", UserID: "owner"}

	if got := EffectivePermission(task, "owner", nil); got != RoleOwner {
		t.Fatalf("owner: expected OWNER, got %s", got)
	}

	// Any user without a share row gets NONE, never an error.
	if got := EffectivePermission(task, "stranger", nil); got != RoleNone {
		t.Fatalf("stranger: expected NONE, got %s", got)
	}
}

func TestEffectivePermission_ShareLevels(t *testing.T) {
	task := &Task{ID: "t1", UserID: "owner"}

	for _, perm := range []Permission{PermissionView, PermissionEdit, PermissionDelete} {
		share := &TaskShare{TaskID: "t1", SharedWithID: "guest", Permission: perm}
		if got := EffectivePermission(task, "guest", share); got != Role(perm) {
			t.Errorf("share %s: expected %s, got %s", perm, perm, got)
		}
	}
}

func TestCapabilityChecks_ExactMembership(t *testing.T) {
	task := &Task{ID: "t1", UserID: "owner"}

	cases := []struct {
		perm      Permission
		canView   bool
		canEdit   bool
		canDelete bool
	}{
		{PermissionView, true, false, false},
		{PermissionEdit, true, true, false},
		{PermissionDelete, true, true, true},
	}
	for _, tc := range cases {
		share := &TaskShare{TaskID: "t1", SharedWithID: "guest", Permission: tc.perm}
		if got := CanView(task, "guest", share); got != tc.canView {
			t.Errorf("%s: CanView = %v, want %v", tc.perm, got, tc.canView)
		}
		if got := CanEdit(task, "guest", share); got != tc.canEdit {
			t.Errorf("%s: CanEdit = %v, want %v", tc.perm, got, tc.canEdit)
		}
		if got := CanDelete(task, "guest", share); got != tc.canDelete {
			t.Errorf("%s: CanDelete = %v, want %v", tc.perm, got, tc.canDelete)
		}
	}
}

func TestCapabilityChecks_NoShare(t *testing.T) {
	task := &Task{ID: "t1", UserID: "owner"}

	if CanView(task, "stranger", nil) {
		t.Error("stranger should not view")
	}
	if CanEdit(task, "stranger", nil) {
		t.Error("stranger should not edit")
	}
	if CanDelete(task, "stranger", nil) {
		t.Error("stranger should not delete")
	}

	// Owner holds every capability without a share row.
	if !CanView(task, "owner", nil) || !CanEdit(task, "owner", nil) || !CanDelete(task, "owner", nil) {
		t.Error("owner should hold all capabilities")
	}
}

func TestParsePermission(t *testing.T) {
	if p, err := ParsePermission(""); err != nil || p != PermissionView {
		t.Fatalf("empty input: expected VIEW default, got %s, %v", p, err)
	}
	if _, err := ParsePermission("ADMIN"); err == nil {
		t.Fatal("expected error for unknown permission")
	}
}

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority(""); err != nil || p != PriorityMedium {
		t.Fatalf("empty input: expected MEDIUM default, got %s, %v", p, err)
	}
	if p, err := ParsePriority("URGENT"); err != nil || p != PriorityUrgent {
		t.Fatalf("expected URGENT, got %s, %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatal("priority literals are case-sensitive; expected error")
	}
}
