// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()

	c := New()
	if c.ORI.Window != 100 {
		t.Errorf("New() ORI.Window = %v, want the 100 default", c.ORI.Window)
	}
}

func TestNew_override(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("ori.window", 250)

	c := New()
	if c.ORI.Window != 250 {
		t.Errorf("New() ORI.Window = %v, want the 250 override", c.ORI.Window)
	}
}
