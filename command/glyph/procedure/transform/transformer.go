package transform

// Transformer turns raw SVG markup into component source text. The pipeline
// treats it as an opaque function from (content, options, name) to text;
// any failure aborts the whole run.
type Transformer interface {
	Transform(content string, options *Options, name string) (string, error)
}

// Options mirrors the fixed configuration of a generate run. Formatting is
// always left to the external formatter tool, never done here.
type Options struct {
	Typescript bool
	JsxRuntime string
	Prettier   bool
}

const (
	JsxRuntimeAutomatic = "automatic"
	JsxRuntimeClassic   = "classic"
)

func DefaultOptions() *Options {
	return &Options{
		Typescript: true,
		JsxRuntime: JsxRuntimeAutomatic,
		Prettier:   false,
	}
}
