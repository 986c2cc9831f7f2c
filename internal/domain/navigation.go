package domain

import (
	"net/url"
	"strings"
)

// Page identifies a top-level screen of the business desk
type Page string

const (
	PageDashboard      Page = "dashboard"
	PageProjects       Page = "projects"
	PageProjectDetail  Page = "project-detail"
	PageReceivable     Page = "receivable"
	PageCustomers      Page = "customers"
	PagePayable        Page = "payable"
	PageSuppliers      Page = "suppliers"
	PageOffers         Page = "offers"
	PagePurchaseOrders Page = "purchase-orders"
	PageInventory      Page = "inventory"
	PageReports        Page = "reports"
	PageSettings       Page = "settings"
)

var pageTitles = map[Page]string{
	PageDashboard:      "لوحة القيادة الرئيسية",
	PageProjects:       "إدارة المشاريع",
	PageProjectDetail:  "تفاصيل المشروع",
	PageReceivable:     "حسابات العملاء (الذمم المدينة)",
	PageCustomers:      "إدارة العملاء",
	PagePayable:        "حسابات الموردين (الذمم الدائنة)",
	PageSuppliers:      "إدارة الموردين",
	PageOffers:         "إدارة عروض الأسعار",
	PagePurchaseOrders: "إدارة أوامر الشراء",
	PageInventory:      "إدارة المخزون",
	PageReports:        "التقارير الذكية",
	PageSettings:       "الإعدادات",
}

// IsValid checks if the Page is a known screen
func (p Page) IsValid() bool {
	_, ok := pageTitles[p]
	return ok
}

// Title returns the page heading
func (p Page) Title() string {
	return pageTitles[p]
}

// Route is a resolved location fragment
type Route struct {
	Page  Page   `json:"page"`
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
}

// ResolveRoute maps a location fragment such as "#offers?id=Q-24-01" to a page.
// Empty or unknown fragments resolve to the dashboard.
func ResolveRoute(fragment string) Route {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	fragment = strings.TrimPrefix(fragment, "/")

	name, rawQuery, _ := strings.Cut(fragment, "?")
	page := Page(name)
	if !page.IsValid() {
		return Route{Page: PageDashboard, Title: PageDashboard.Title()}
	}

	route := Route{Page: page, Title: page.Title()}
	if rawQuery != "" {
		if values, err := url.ParseQuery(rawQuery); err == nil {
			route.ID = values.Get("id")
		}
	}
	return route
}
