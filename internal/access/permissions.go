// Package access maps user roles to the views they may open and the actions
// reserved for admins. It is a static lookup table consulted by middleware
// before any handler runs; there is no policy engine behind it.
package access

import "opsboard/internal/models"

type View string

const (
	ViewDashboard  View = "dashboard"
	ViewProduction View = "production"
	ViewPacking    View = "packing"
	ViewStore      View = "store"
	ViewOrders     View = "orders"
	ViewEcommerce  View = "ecommerce"
)

// viewsByRole lists views in menu order. Order matters for rendering.
var viewsByRole = map[models.UserRole][]View{
	models.RoleAdmin:      {ViewDashboard, ViewProduction, ViewPacking, ViewStore, ViewOrders, ViewEcommerce},
	models.RoleProduction: {ViewDashboard, ViewProduction},
	models.RolePacking:    {ViewDashboard, ViewPacking},
	models.RoleStore:      {ViewDashboard, ViewStore},
	models.RoleEcommerce:  {ViewDashboard, ViewOrders, ViewEcommerce},
}

// Views returns the menu for a role. Unrecognized roles see the dashboard
// and nothing else.
func Views(role string) []View {
	views, ok := viewsByRole[models.UserRole(role)]
	if !ok {
		return []View{ViewDashboard}
	}
	return views
}

// CanView reports whether the role may open the view.
func CanView(role string, view View) bool {
	for _, v := range Views(role) {
		if v == view {
			return true
		}
	}
	return false
}

// IsAdmin gates the admin-only actions: creating and deleting tasks,
// browsing history, and managing accounts.
func IsAdmin(role string) bool {
	return models.UserRole(role) == models.RoleAdmin
}

// ViewForKind maps a task collection to the view that owns it.
func ViewForKind(kind string) View {
	if models.TaskKind(kind) == models.KindPacking {
		return ViewPacking
	}
	return ViewProduction
}
