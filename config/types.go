package config

// DecoderConfig selects the API generation and geometry precision
type DecoderConfig struct {
	Generation        string `yaml:"generation" validate:"omitempty,oneof=v5 v4"`
	PolylinePrecision uint32 `yaml:"polylinePrecision" validate:"omitempty,gte=1,lte=7"`
}

// OutputConfig controls how decoded steps are rendered
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json record"`
	Pretty bool   `yaml:"pretty"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Env string `yaml:"env" validate:"omitempty,oneof=production development"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Decoder DecoderConfig `yaml:"decoder"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}
