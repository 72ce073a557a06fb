package config

import (
	imagepkg "github.com/youruser/menucard/internal/image"
)

// Config is the full menucard configuration document.
type Config struct {
	Font        string               `yaml:"font" validate:"required"`
	Output      string               `yaml:"output" validate:"required"`
	JPEGQuality int                  `yaml:"jpeg_quality" validate:"min=1,max=100"`
	HueOffset   float64              `yaml:"hue_offset"`
	Canvas      Canvas               `yaml:"canvas"`
	Colors      Colors               `yaml:"colors"`
	FontScaling imagepkg.FontScaling `yaml:"font_scaling"`
	QR          QR                   `yaml:"qr"`
	Log         Log                  `yaml:"log"`
	Server      Server               `yaml:"server"`
}

// Canvas holds output dimensions and spacing in output pixels.
type Canvas struct {
	Width        int `yaml:"width" validate:"min=64,max=8192"`
	Height       int `yaml:"height" validate:"min=64,max=8192"`
	OuterPadding int `yaml:"outer_padding" validate:"min=0"`
	InnerPadding int `yaml:"inner_padding" validate:"min=1"`
	Scale        int `yaml:"scale" validate:"min=1,max=8"`
	LineSpacing  int `yaml:"line_spacing" validate:"min=0"`
	TextOffset   int `yaml:"text_offset" validate:"min=0"`
}

// Colors are hex strings such as "#1d1d1d".
type Colors struct {
	Background string `yaml:"background" validate:"required,hexcolor"`
	Foreground string `yaml:"foreground" validate:"required,hexcolor"`
}

// QR configures the optional QR badge. An empty Text disables it.
type QR struct {
	Text string `yaml:"text"`
	Size int    `yaml:"size" validate:"min=16"`
}

type Log struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

type Server struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}
