// Package config holds the build-time constants of the firmware and the
// JSON board profiles used by the host simulator.
package config

import (
	"encoding/json"
	"errors"
)

// Constants shared by every board. There is no runtime override on device.
const (
	// LEDToggleIntervalMs is the status LED half period
	LEDToggleIntervalMs = 500

	// ReadTimeoutMs bounds the wait for each input byte
	ReadTimeoutMs = 10

	// ConsolePollIntervalMs is how often the main loop checks for input
	ConsolePollIntervalMs = 50
)

// Known LED drive modes in a board profile
const (
	ModeOpenDrain = "open-drain"
	ModePushPull  = "push-pull"
)

// BoardConfig describes a simulated board
type BoardConfig struct {
	Name     string    `json:"name"`
	MCU      string    `json:"mcu"`
	Core     string    `json:"core"`
	CoreHz   uint32    `json:"core_hz"`
	CPUID    uint32    `json:"cpuid"`
	FlashKB  uint16    `json:"flash_kb"`
	UniqueID [3]uint32 `json:"unique_id"`

	LED LEDConfig `json:"led"`

	// PeerAttached simulates a debugger/terminal on the debug channel
	PeerAttached *bool `json:"peer_attached,omitempty"`

	// FailClock makes the simulated clock bring-up fail
	FailClock bool `json:"fail_clock"`
}

// LEDConfig describes the status line of a board
type LEDConfig struct {
	Pin     *uint32 `json:"pin,omitempty"`
	Mode    string  `json:"mode"`
	Initial *bool   `json:"initial,omitempty"`
}

// LoadConfig parses a JSON board profile and fills in defaults
func LoadConfig(jsonData []byte) (*BoardConfig, error) {
	var config BoardConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the profile of the reference board (STM32F103 "Blue Pill")
func Default() *BoardConfig {
	config := &BoardConfig{}
	applyDefaults(config)
	return config
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *BoardConfig) {
	if config.Name == "" {
		config.Name = "bluepill"
	}
	if config.MCU == "" {
		config.MCU = "STMicroelectronics STM32F103"
	}
	if config.Core == "" {
		config.Core = "Arm Cortex-M3"
	}
	if config.CoreHz == 0 {
		config.CoreHz = 72000000 // HSE 8 MHz * PLL 9
	}
	if config.CPUID == 0 {
		config.CPUID = 0x411FC231 // Cortex-M3 r1p1
	}
	if config.FlashKB == 0 {
		config.FlashKB = 64
	}
	if config.UniqueID == [3]uint32{} {
		config.UniqueID = [3]uint32{0x0670FF48, 0x48575067, 0x87162637}
	}

	// Status LED: PC13, active low, open-drain, starts released (off)
	if config.LED.Mode == "" {
		config.LED.Mode = ModeOpenDrain
	}
	if config.LED.Pin == nil {
		pc13 := uint32(45) // port*16+pin
		config.LED.Pin = &pc13
	}
	if config.LED.Initial == nil {
		on := true
		config.LED.Initial = &on
	}
	if config.PeerAttached == nil {
		attached := true
		config.PeerAttached = &attached
	}
}

func validate(config *BoardConfig) error {
	switch config.LED.Mode {
	case ModeOpenDrain, ModePushPull:
	default:
		return errors.New("config: unknown led mode " + config.LED.Mode)
	}
	return nil
}
