// Package layout wraps router-supplied page content in a fixed frame.
//
// A Frame owns only its own markup. Which child fills the slot is decided by
// the router on every render; the frame keeps nothing between renders.
package layout

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DefaultSlotID is the id of the slot element when a frame leaves SlotID empty.
const DefaultSlotID = "layout-slot"

// Frame is the static chrome drawn around a child route.
type Frame struct {
	// ID names the frame in markup (data-layout).
	ID string
	// Label is the constant heading rendered above the slot.
	Label string
	// SlotID is the id of the element that receives the child.
	SlotID string
}

// Dashboard is the frame mounted over the dashboard subtree.
var Dashboard = Frame{ID: "dashboard", Label: "Dashboard Layout", SlotID: DefaultSlotID}

var errMissingID = errors.New("layout id is required")

// Validate checks the frame can be rendered.
func (f Frame) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return errMissingID
	}
	return nil
}

func (f Frame) slotID() string {
	if id := strings.TrimSpace(f.SlotID); id != "" {
		return id
	}
	return DefaultSlotID
}

// Compose renders the frame with child in its single slot. A nil child leaves
// the slot empty.
func Compose(frame Frame, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<section class="layout" data-layout="` + templ.EscapeString(frame.ID) + `">`
		if label := strings.TrimSpace(frame.Label); label != "" {
			open += `<header class="layout-header"><h2 class="layout-label">` + templ.EscapeString(label) + `</h2></header>`
		}
		open += `<div class="layout-slot" id="` + templ.EscapeString(frame.slotID()) + `" data-slot>`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if child != nil {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

// Component renders the frame around the children carried by ctx, which is
// how the router hands over the matched child (templ.WithChildren).
func (f Frame) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		child := templ.GetChildren(ctx)
		// Drop children so nested components do not render them a second time.
		return Compose(f, child).Render(templ.ClearChildren(ctx), w)
	})
}
