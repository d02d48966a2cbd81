package osk

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func visibleSignal(visible bool) *dbus.Signal {
	return &dbus.Signal{
		Path: oskPath,
		Name: propertiesChanged,
		Body: []any{
			oskInterface,
			map[string]dbus.Variant{visibleProperty: dbus.MakeVariant(visible)},
			[]string{},
		},
	}
}

func TestVisibilityFromSignal(t *testing.T) {
	tests := []struct {
		name        string
		sig         *dbus.Signal
		wantVisible bool
		wantOK      bool
	}{
		{name: "nil signal", sig: nil},
		{name: "shown", sig: visibleSignal(true), wantVisible: true, wantOK: true},
		{name: "hidden", sig: visibleSignal(false), wantVisible: false, wantOK: true},
		{
			name: "other member",
			sig:  &dbus.Signal{Path: oskPath, Name: "org.freedesktop.DBus.NameOwnerChanged"},
		},
		{
			name: "other object",
			sig: &dbus.Signal{
				Path: "/org/other",
				Name: propertiesChanged,
				Body: visibleSignal(true).Body,
			},
		},
		{
			name: "other interface",
			sig: &dbus.Signal{
				Path: oskPath,
				Name: propertiesChanged,
				Body: []any{"org.other", map[string]dbus.Variant{visibleProperty: dbus.MakeVariant(true)}},
			},
		},
		{
			name: "visible not in changed set",
			sig: &dbus.Signal{
				Path: oskPath,
				Name: propertiesChanged,
				Body: []any{oskInterface, map[string]dbus.Variant{"Other": dbus.MakeVariant(1)}},
			},
		},
		{
			name: "visible has wrong type",
			sig: &dbus.Signal{
				Path: oskPath,
				Name: propertiesChanged,
				Body: []any{oskInterface, map[string]dbus.Variant{visibleProperty: dbus.MakeVariant("yes")}},
			},
		},
		{
			name: "short body",
			sig:  &dbus.Signal{Path: oskPath, Name: propertiesChanged, Body: []any{oskInterface}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, ok := visibilityFromSignal(tt.sig)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVisible, visible)
		})
	}
}
