package auth

// Page identifies a routable page under the application base path.
type Page string

const (
	PageLogin          Page = "login"
	PageHome           Page = "home"
	PageAnalytics      Page = "analytics"
	PageInventory      Page = "inventory"
	PagePurchases      Page = "purchases"
	PageSales          Page = "sales"
	PageFinances       Page = "finances"
	PageHumanResources Page = "human_resources"
)

// Path returns the page path relative to the base path.
func (p Page) Path() string {
	if p == PageLogin || p == "" {
		return "/"
	}
	return "/pages/" + string(p)
}

// NavEntry is one link in the role navigation.
type NavEntry struct {
	Name string
	Page Page
}

// Path returns the entry path relative to the base path.
func (e NavEntry) Path() string { return e.Page.Path() }

var (
	navHome           = NavEntry{Name: "Inicio", Page: PageHome}
	navAnalytics      = NavEntry{Name: "Analíticas", Page: PageAnalytics}
	navInventory      = NavEntry{Name: "Inventario", Page: PageInventory}
	navPurchases      = NavEntry{Name: "Compras", Page: PagePurchases}
	navSales          = NavEntry{Name: "Ventas", Page: PageSales}
	navFinances       = NavEntry{Name: "Finanzas", Page: PageFinances}
	navHumanResources = NavEntry{Name: "Recursos Humanos", Page: PageHumanResources}
)

var roleMenus = map[Role][]NavEntry{
	RoleAdmin:      {navHome, navAnalytics, navInventory, navPurchases, navSales, navFinances, navHumanResources},
	RoleHR:         {navHome, navAnalytics, navHumanResources},
	RoleSales:      {navHome, navAnalytics, navSales},
	RoleInventory:  {navHome, navAnalytics, navInventory},
	RolePurchasing: {navHome, navAnalytics, navPurchases},
	RoleFinance:    {navHome, navAnalytics, navFinances},
}

var defaultMenu = []NavEntry{navHome}

// MenuFor returns the ordered navigation for role.
// Unknown or empty roles get the home-only menu.
// The returned slice is a copy and may be modified by the caller.
func MenuFor(role Role) []NavEntry {
	entries, ok := roleMenus[role]
	if !ok {
		entries = defaultMenu
	}
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}

// KnownRole reports whether role has a dedicated menu.
func KnownRole(role Role) bool {
	_, ok := roleMenus[role]
	return ok
}

// Pages lists every page served by the UI, login first.
func Pages() []Page {
	return []Page{
		PageLogin, PageHome, PageAnalytics, PageInventory,
		PagePurchases, PageSales, PageFinances, PageHumanResources,
	}
}
