package loader

import "github.com/hupe1980/lexfeat/resource"

type options struct {
	resources *resource.Controller
	tempDir   string
}

// Option configures a load.
type Option func(*options)

// WithResourceController bounds memory, read throughput and corpus workers.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithTempDir sets where remote or compressed SQLite databases are staged.
// Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
