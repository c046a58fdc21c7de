package user

type Permission string

const (
	// Payroll
	PermissionPayrollCreate  Permission = "payroll.create"
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollEdit    Permission = "payroll.edit"
	PermissionPayrollDelete  Permission = "payroll.delete"

	// User management
	PermissionUserManage Permission = "users.manage"

	// Self service
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps each role to its explicit capability set. Authorization
// is always a membership check against this table, never a role comparison
// scattered through handlers.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPayrollCreate,
		PermissionPayrollViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollEdit,
		PermissionPayrollDelete,
		PermissionUserManage,
		PermissionDashboardView,
	},
	RoleSupervisor: {
		// Supervisor may list and view but never mutate
		PermissionPayrollViewAll,
		PermissionPayrollViewOwn,
		PermissionDashboardView,
	},
	RoleGuest: {
		// Guest only ever sees records scoped to their own id
		PermissionPayrollViewOwn,
		PermissionDashboardView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
