package index

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *Config
}

// Config is the glyph.yml project configuration.
type Config struct {
	SourceDir          *string          `yaml:"source_dir" validate:"required"`
	OutputDir          *string          `yaml:"output_dir" validate:"required"`
	ComponentExtension *string          `yaml:"component_extension"`
	BrowsePage         *string          `yaml:"browse_page"`
	Generator          *ToolConfig      `yaml:"generator"`
	Formatter          *ToolConfig      `yaml:"formatter"`
	Minio              *MinioConfig     `yaml:"minio"`
	Preview            *PreviewConfig   `yaml:"preview"`
	Telemetry          *TelemetryConfig `yaml:"telemetry"`
}

// ToolConfig describes one external tool invocation. Args are passed
// verbatim; the pipeline appends its own trailing path arguments.
type ToolConfig struct {
	Command *string  `yaml:"command" validate:"required"`
	Args    []string `yaml:"args"`
}

type MinioConfig struct {
	Endpoint  *string `yaml:"endpoint" validate:"required"`
	AccessKey *string `yaml:"access_key" validate:"required"`
	SecretKey *string `yaml:"secret_key" validate:"required"`
	Bucket    *string `yaml:"bucket" validate:"required"`
	Prefix    *string `yaml:"prefix"`
}

type PreviewConfig struct {
	Listen *string `yaml:"listen"`
}

type TelemetryConfig struct {
	Url          *string `yaml:"url" validate:"required"`
	Organization *string `yaml:"organization"`
}

func (r *Config) GetMinioEndpoint() *string {
	return r.Minio.Endpoint
}

func (r *Config) GetMinioAccessKey() *string {
	return r.Minio.AccessKey
}

func (r *Config) GetMinioSecretKey() *string {
	return r.Minio.SecretKey
}

func (r *Config) GetMinioBucket() *string {
	return r.Minio.Bucket
}

func (r *Config) GetPreviewListen() *string {
	return r.Preview.Listen
}

func (r *Config) GetTelemetryUrl() *string {
	if r.Telemetry == nil {
		return nil
	}
	return r.Telemetry.Url
}

func (r *Config) GetTelemetryOrganization() *string {
	if r.Telemetry == nil {
		return nil
	}
	return r.Telemetry.Organization
}
