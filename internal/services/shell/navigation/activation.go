package navigation

import (
	"context"
	"errors"
	"strings"
)

// Navigator requests a client-side navigation to an absolute path. The
// routing layer owns location and history; implementations decide what an
// unknown path means.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// Trigger is the input that reached a menu item.
type Trigger uint8

// Triggers. Anything that is not an activation key maps to TriggerNone.
const (
	TriggerNone Trigger = iota
	TriggerPointer
	TriggerEnter
	TriggerSpace
)

func (t Trigger) String() string {
	switch t {
	case TriggerPointer:
		return "pointer"
	case TriggerEnter:
		return "enter"
	case TriggerSpace:
		return "space"
	default:
		return "none"
	}
}

// Activates reports whether t activates a menu item.
func (t Trigger) Activates() bool {
	return t == TriggerPointer || t == TriggerEnter || t == TriggerSpace
}

// TriggerForKey maps a KeyboardEvent.key value to a trigger.
func TriggerForKey(key string) Trigger {
	switch key {
	case "Enter":
		return TriggerEnter
	case " ", "Spacebar":
		return TriggerSpace
	}
	if strings.EqualFold(key, "space") {
		return TriggerSpace
	}
	return TriggerNone
}

// activationKeys lists the keydown values bound on each rendered item next
// to click. Enter on a focused anchor is delivered as a click, so it is not
// listed; binding it as well would fire two requests.
var activationKeys = []string{" "}

func hxTrigger() string {
	events := []string{"click"}
	for _, key := range activationKeys {
		if TriggerForKey(key).Activates() {
			events = append(events, "keydown[key=='"+key+"']")
		}
	}
	return strings.Join(events, ", ")
}

var errNavigatorRequired = errors.New("navigator is required")

// Activate issues exactly one navigation to the item's path when trigger
// activates it, and none otherwise. It reports whether a navigation was sent.
func (i Item) Activate(ctx context.Context, nav Navigator, trigger Trigger) (bool, error) {
	if !trigger.Activates() {
		return false, nil
	}
	if nav == nil {
		return false, errNavigatorRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return true, nav.Navigate(ctx, i.Path)
}
