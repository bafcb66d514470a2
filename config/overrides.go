package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk tuning file. Only keys present in the file
// replace the built-in defaults.
type Overrides struct {
	Player *struct {
		JumpImpulse  *float64 `yaml:"jumpImpulse"`
		BoostWith    *float64 `yaml:"boostWith"`
		BoostAgainst *float64 `yaml:"boostAgainst"`
	} `yaml:"player"`
	Physics *struct {
		AccelerationY *float64 `yaml:"accelerationY"`
		MaxFrameDelta *float64 `yaml:"maxFrameDelta"`
	} `yaml:"physics"`
	Camera *struct {
		LeadRight *float64 `yaml:"leadRight"`
		LeadLeft  *float64 `yaml:"leadLeft"`
		MarginY   *float64 `yaml:"marginY"`
	} `yaml:"camera"`
	Session *struct {
		IrisDuration *float64 `yaml:"irisDuration"`
	} `yaml:"session"`
	Audio *struct {
		MusicVolume *float64 `yaml:"musicVolume"`
		SFXVolume   *float64 `yaml:"sfxVolume"`
	} `yaml:"audio"`
	Window *struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
		TPS    *int `yaml:"tps"`
	} `yaml:"window"`
}

// LoadOverrides reads a YAML tuning file and applies it to the globals.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse tuning YAML from %s: %w", path, err)
	}

	if err := validateOverrides(&o); err != nil {
		return fmt.Errorf("invalid tuning file %s: %w", path, err)
	}

	o.Apply()
	return nil
}

func validateOverrides(o *Overrides) error {
	if o.Physics != nil && o.Physics.MaxFrameDelta != nil && *o.Physics.MaxFrameDelta <= 0 {
		return fmt.Errorf("physics.maxFrameDelta must be positive")
	}
	if o.Session != nil && o.Session.IrisDuration != nil && *o.Session.IrisDuration <= 0 {
		return fmt.Errorf("session.irisDuration must be positive")
	}
	if o.Window != nil {
		if o.Window.Width != nil && *o.Window.Width <= 0 {
			return fmt.Errorf("window.width must be positive")
		}
		if o.Window.Height != nil && *o.Window.Height <= 0 {
			return fmt.Errorf("window.height must be positive")
		}
		if o.Window.TPS != nil && *o.Window.TPS <= 0 {
			return fmt.Errorf("window.tps must be positive")
		}
	}
	return nil
}

// Apply copies every set field onto the global configuration.
func (o *Overrides) Apply() {
	if p := o.Player; p != nil {
		setFloat(&Player.JumpImpulse, p.JumpImpulse)
		setFloat(&Player.BoostWith, p.BoostWith)
		setFloat(&Player.BoostAgainst, p.BoostAgainst)
	}
	if p := o.Physics; p != nil {
		setFloat(&Physics.AccelerationY, p.AccelerationY)
		setFloat(&Physics.MaxFrameDelta, p.MaxFrameDelta)
	}
	if c := o.Camera; c != nil {
		setFloat(&Camera.LeadRight, c.LeadRight)
		setFloat(&Camera.LeadLeft, c.LeadLeft)
		setFloat(&Camera.MarginY, c.MarginY)
	}
	if s := o.Session; s != nil && s.IrisDuration != nil {
		Session.IrisDuration = *s.IrisDuration
	}
	if a := o.Audio; a != nil {
		setFloat(&Audio.DefaultMusicVol, a.MusicVolume)
		setFloat(&Audio.DefaultSFXVol, a.SFXVolume)
	}
	if w := o.Window; w != nil {
		setInt(&C.Width, w.Width)
		setInt(&C.Height, w.Height)
		setInt(&C.TPS, w.TPS)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
