package client

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/tinyfs/internal/config"
)

// Flags holds every flag of the tool: the configuration flags and the
// command options.
type Flags struct {
	Config *config.Flags

	Compress bool
	Long     bool

	fs *pflag.FlagSet
}

// RegisterFlags binds all flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{
		Config: config.RegisterFlags(fs),
		fs:     fs,
	}
	fs.BoolVar(&f.Compress, "compress", false, "add: store the entry gzip-compressed")
	fs.BoolVarP(&f.Long, "long", "l", false, "list: show ratio, digest and compression hints")
	return f
}

// Usages returns the formatted flag help.
func (f *Flags) Usages() string {
	if f == nil || f.fs == nil {
		return ""
	}
	return f.fs.FlagUsages()
}
