package domain

// Role is the effective permission of an actor on a task. Beyond the three
// share levels it adds OWNER (the task's creator) and NONE (no access; the
// task should not even be visible).
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleView   Role = "VIEW"
	RoleEdit   Role = "EDIT"
	RoleDelete Role = "DELETE"
	RoleNone   Role = "NONE"
)

// EffectivePermission computes the actor's role on a task. share is the
// actor's TaskShare row for this task, or nil if none exists. Pure query,
// no side effects; callers decide whether NONE maps to 403 or 404.
func EffectivePermission(task *Task, actorID string, share *TaskShare) Role {
	if task.UserID == actorID {
		return RoleOwner
	}
	if share == nil {
		return RoleNone
	}
	return Role(share.Permission)
}

// CanView reports whether the actor may read the task. Any share level is
// sufficient.
func CanView(task *Task, actorID string, share *TaskShare) bool {
	return task.UserID == actorID || share != nil
}

// CanEdit reports whether the actor may mutate the task. The check is exact
// set membership, not a derived hierarchy: EDIT and DELETE qualify, VIEW
// does not.
func CanEdit(task *Task, actorID string, share *TaskShare) bool {
	if task.UserID == actorID {
		return true
	}
	return share != nil && (share.Permission == PermissionEdit || share.Permission == PermissionDelete)
}

// CanDelete reports whether the actor may delete the task. Only DELETE
// qualifies; EDIT alone does not authorize deletion.
func CanDelete(task *Task, actorID string, share *TaskShare) bool {
	if task.UserID == actorID {
		return true
	}
	return share != nil && share.Permission == PermissionDelete
}
