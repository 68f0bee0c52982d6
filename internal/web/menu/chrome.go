package menu

import (
	"github.com/destinity/erp-ui/internal/web/dom"
	"github.com/destinity/erp-ui/internal/web/session"
)

// Chrome holds the controllers bound by Init. Fields are nil when their
// initialization failed.
type Chrome struct {
	Mobile  *Mobile
	Profile *Profile
}

// Init binds the mobile menu, the profile dropdown and the role navigation
// once doc is ready. Each part initializes independently; failures are
// passed to report and do not stop the others.
func Init(doc dom.Document, a *session.Auth, nav dom.Navigator, opts ProfileOptions, report func(error)) *Chrome {
	if report == nil {
		report = func(error) {}
	}
	c := &Chrome{}
	doc.OnReady(func() {
		m, err := NewMobile(doc)
		if err != nil {
			report(err)
		}
		c.Mobile = m
	})
	doc.OnReady(func() {
		p, err := NewProfile(doc, a, nav, opts)
		if err != nil {
			report(err)
		}
		c.Profile = p
	})
	doc.OnReady(func() {
		if err := RenderByRole(doc, a, opts.BasePath); err != nil {
			report(err)
		}
	})
	return c
}
