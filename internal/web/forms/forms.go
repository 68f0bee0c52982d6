// Package forms holds the field error helpers shared by the form controllers.
package forms

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/destinity/erp-ui/internal/web/dom"

	apperrors "github.com/destinity/erp-ui/internal/errors"
)

const (
	// ErrorClass marks an input holding an invalid value.
	ErrorClass = "input-error"
	// HiddenClass hides error slots and the general banner.
	HiddenClass = "hidden"
	// ShakeClass animates the general banner when it is shown.
	ShakeClass = "shake"
	// ShakeDuration is how long ShakeClass stays on the banner.
	ShakeDuration = 500 * time.Millisecond
)

// Timer is the handle returned by an AfterFunc implementation.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d.
type AfterFunc func(d time.Duration, fn func()) Timer

func stdAfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

// Required pairs a field with its error slot and the message shown when it is blank.
type Required struct {
	Field   dom.Element
	Slot    dom.Element
	Message string
}

// Helpers carries the timer state of the general error banner.
type Helpers struct {
	afterFunc AfterFunc

	mu      sync.Mutex
	gen     int
	pending []shake
}

type shake struct {
	el    dom.Element
	gen   int
	timer Timer
}

// NewHelpers returns Helpers scheduling with after, or time.AfterFunc when nil.
func NewHelpers(after AfterFunc) *Helpers {
	if after == nil {
		after = stdAfterFunc
	}
	return &Helpers{afterFunc: after}
}

var defaultHelpers = NewHelpers(nil)

// MarkFieldError flags field as invalid and shows message in slot.
func MarkFieldError(field, slot dom.Element, message string) error {
	if !dom.Valid(field) {
		return apperrors.InvalidField("field", "campo no válido")
	}
	if !dom.Valid(slot) {
		return apperrors.InvalidField("slot", "contenedor de error no válido")
	}
	field.AddClass(ErrorClass)
	slot.SetTextContent(message)
	slot.RemoveClass(HiddenClass)
	field.Focus()
	return nil
}

// ClearErrors resets every field and slot, and the general banner when given.
func ClearErrors(fields, slots []dom.Element, general dom.Element) error {
	return defaultHelpers.ClearErrors(fields, slots, general)
}

// ShowGeneralError shows message in the general banner.
func ShowGeneralError(general dom.Element, message string) error {
	return defaultHelpers.ShowGeneralError(general, message)
}

// ValidateRequired marks every blank entry and reports whether all were filled.
func ValidateRequired(entries []Required) (bool, error) {
	if entries == nil {
		return false, apperrors.InvalidArgument("se esperaba una lista de campos")
	}
	// Every entry is checked before the first one is marked.
	blank := make([]bool, len(entries))
	for i, e := range entries {
		if !dom.Valid(e.Field) {
			return false, apperrors.InvalidField("entries["+strconv.Itoa(i)+"].field", "campo no válido")
		}
		blank[i] = strings.TrimSpace(e.Field.Value()) == ""
		if blank[i] && !dom.Valid(e.Slot) {
			return false, apperrors.InvalidField("entries["+strconv.Itoa(i)+"].slot", "contenedor de error no válido")
		}
	}

	valid := true
	for i, e := range entries {
		if !blank[i] {
			continue
		}
		valid = false
		if err := MarkFieldError(e.Field, e.Slot, e.Message); err != nil {
			return false, err
		}
	}
	return valid, nil
}

// ClearErrors resets every field and slot, and the general banner when given.
// A pending shake on the banner is cancelled.
func (h *Helpers) ClearErrors(fields, slots []dom.Element, general dom.Element) error {
	if fields == nil {
		return apperrors.InvalidArgument("se esperaba una lista de campos")
	}
	if slots == nil {
		return apperrors.InvalidArgument("se esperaba una lista de contenedores de error")
	}

	for _, f := range fields {
		if dom.Valid(f) {
			f.RemoveClass(ErrorClass)
		}
	}
	for _, s := range slots {
		if dom.Valid(s) {
			s.AddClass(HiddenClass)
			s.SetTextContent("")
		}
	}

	if dom.Valid(general) {
		h.cancel(general)
		general.AddClass(HiddenClass)
		if p := general.QuerySelector("p"); dom.Valid(p) {
			p.SetTextContent("")
		}
	}
	return nil
}

// ShowGeneralError shows message in the banner's p child and shakes it for ShakeDuration.
// Calling it again before the shake ends restarts the shake.
func (h *Helpers) ShowGeneralError(general dom.Element, message string) error {
	if !dom.Valid(general) {
		return apperrors.InvalidField("general", "contenedor de error general no válido")
	}
	if p := general.QuerySelector("p"); dom.Valid(p) {
		p.SetTextContent(message)
	}
	general.RemoveClass(HiddenClass, "opacity-0")
	general.AddClass(ShakeClass)

	h.cancel(general)

	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	timer := h.afterFunc(ShakeDuration, func() {
		if h.take(general, gen) {
			general.RemoveClass(ShakeClass)
		}
	})

	h.mu.Lock()
	h.pending = append(h.pending, shake{el: general, gen: gen, timer: timer})
	h.mu.Unlock()
	return nil
}

// Stop cancels every pending shake.
func (h *Helpers) Stop() {
	h.mu.Lock()
	pending := h.pending
	h.pending = nil
	h.mu.Unlock()
	for _, p := range pending {
		p.timer.Stop()
	}
}

// Pending reports the number of scheduled shake removals.
func (h *Helpers) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

func (h *Helpers) cancel(general dom.Element) {
	h.mu.Lock()
	var stopped []Timer
	kept := h.pending[:0]
	for _, p := range h.pending {
		if dom.Same(p.el, general) {
			stopped = append(stopped, p.timer)
			continue
		}
		kept = append(kept, p)
	}
	h.pending = kept
	h.mu.Unlock()
	for _, t := range stopped {
		t.Stop()
	}
}

// take removes the entry for general scheduled as gen and reports whether it was still pending.
func (h *Helpers) take(general dom.Element, gen int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, p := range h.pending {
		if p.gen == gen && dom.Same(p.el, general) {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return true
		}
	}
	return false
}
