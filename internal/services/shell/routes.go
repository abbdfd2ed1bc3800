package shell

import (
	"fmt"

	"github.com/louisbranch/appshell/internal/services/shell/layout"
	"github.com/louisbranch/appshell/internal/services/shell/navigation"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
	"github.com/louisbranch/appshell/internal/services/shell/routing"
	"github.com/louisbranch/appshell/internal/services/shell/templates"
)

// NewRouter builds the shell route tree and checks that every registry entry
// is routable.
func NewRouter(reg navigation.Registry) (*routing.Router, error) {
	router := routing.New(templates.NotFoundPage)
	steps := []func() error{
		func() error { return router.Page(routepath.Root, "Home", templates.HomePage()) },
		func() error { return router.Page(routepath.Settings, "Settings", templates.SettingsPage()) },
		func() error { return router.Layout(routepath.Dashboard, layout.Dashboard) },
		func() error {
			return router.Child(routepath.Dashboard, routepath.DashboardOverview, "Overview", templates.DashboardOverview())
		},
		func() error {
			return router.Child(routepath.Dashboard, routepath.DashboardActivity, "Activity", templates.DashboardActivity())
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("register routes: %w", err)
		}
	}
	if err := router.Require(reg.Paths()...); err != nil {
		return nil, fmt.Errorf("navigation registry: %w", err)
	}
	return router, nil
}
