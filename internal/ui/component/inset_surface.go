package component

import (
	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
)

// Tint classes set on the scroller. The theme maps them to colors.
const (
	ClassTintBaseline = "tint-baseline"
	ClassTintObscured = "tint-obscured"
)

// TintClass returns the CSS class for tint.
func TintClass(tint entity.Tint) string {
	if tint == entity.TintObscured {
		return ClassTintObscured
	}
	return ClassTintBaseline
}

var _ port.InsetSurface = (*InsetSurface)(nil)

// InsetSurface lets the scrollable screen content clear the on-screen keyboard.
// The bottom inset is extra margin under the content so the address row can
// scroll above the keyboard.
type InsetSurface struct {
	scroller layout.ScrolledWidget
	content  layout.Widget
	inset    int
	tint     entity.Tint
}

// NewInsetSurface starts at zero inset with the baseline tint.
func NewInsetSurface(scroller layout.ScrolledWidget, content layout.Widget) *InsetSurface {
	s := &InsetSurface{scroller: scroller, content: content, tint: entity.TintBaseline}
	scroller.AddCssClass(ClassTintBaseline)
	return s
}

func (s *InsetSurface) SetBottomInset(px int) {
	if px < 0 {
		px = 0
	}
	if px == s.inset {
		return
	}
	s.inset = px
	s.content.SetMarginBottom(px)
}

func (s *InsetSurface) SetTint(tint entity.Tint) {
	if tint == s.tint {
		return
	}
	s.scroller.RemoveCssClass(TintClass(s.tint))
	s.scroller.AddCssClass(TintClass(tint))
	s.tint = tint
}

// Insets returns the current insets.
func (s *InsetSurface) Insets() entity.Insets {
	return entity.Insets{Bottom: s.inset}
}

func (s *InsetSurface) Tint() entity.Tint {
	return s.tint
}
