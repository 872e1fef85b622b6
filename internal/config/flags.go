package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/tinyfs/models"
)

// Flag names shared with the command line front end.
const (
	FlagConfig           = "config"
	FlagLogLevel         = "log-level"
	FlagLogFile          = "log-file"
	FlagKeyFile          = "key-file"
	FlagCompressionLevel = "compression-level"
	FlagUTF8             = "utf8"
	FlagCaseInsensitive  = "case-insensitive"
)

// Flags holds the configuration flags bound to a pflag.FlagSet. Only flags
// the user actually set are merged into the configuration.
type Flags struct {
	fs *pflag.FlagSet

	jsonConfigPath   string
	logLevel         string
	logFile          string
	keyFile          string
	compressionLevel int
	utf8Names        bool
	caseInsensitive  bool
}

// RegisterFlags binds the configuration flags to fs.
//
// Flags:
//
//	-c/--config            json file path with configs
//	--log-level            zerolog level name
//	--log-file             log file path
//	--key-file             file with a raw 32-byte key
//	--compression-level    gzip level, -1 or 1..9
//	--utf8                 UTF-8 names
//	--case-insensitive     case-insensitive names
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.jsonConfigPath, FlagConfig, "c", "", "JSON config file path")
	fs.StringVar(&f.logLevel, FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, FlagLogFile, "", "Append logs to this file instead of stderr")
	fs.StringVar(&f.keyFile, FlagKeyFile, "", "File with a raw 32-byte encryption key")
	fs.IntVar(&f.compressionLevel, FlagCompressionLevel, 0, "Gzip level: -1 (default) or 1..9")
	fs.BoolVar(&f.utf8Names, FlagUTF8, false, "Store entry names as UTF-8")
	fs.BoolVar(&f.caseInsensitive, FlagCaseInsensitive, false, "Compare entry names ignoring case")

	return f
}

// Changed reports whether the user set the named flag.
func (f *Flags) Changed(name string) bool {
	return f.fs.Changed(name)
}

// UTF8Names returns the --utf8 value.
func (f *Flags) UTF8Names() bool { return f.utf8Names }

// CaseInsensitive returns the --case-insensitive value.
func (f *Flags) CaseInsensitive() bool { return f.caseInsensitive }

// Update turns the name flags the user set into a container flag change.
func (f *Flags) Update() models.FlagUpdate {
	var u models.FlagUpdate
	if f.Changed(FlagCaseInsensitive) {
		v := f.caseInsensitive
		u.CaseInsensitive = &v
	}
	if f.Changed(FlagUTF8) {
		v := f.utf8Names
		u.UTF8Names = &v
	}
	return u
}

func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{}
	if f.Changed(FlagConfig) {
		cfg.JSONFilePath = f.jsonConfigPath
	}
	if f.Changed(FlagLogLevel) {
		cfg.App.LogLevel = f.logLevel
	}
	if f.Changed(FlagLogFile) {
		cfg.App.LogFile = f.logFile
	}
	if f.Changed(FlagKeyFile) {
		cfg.Crypto.KeyFile = f.keyFile
	}
	if f.Changed(FlagCompressionLevel) {
		cfg.Codec.CompressionLevel = f.compressionLevel
	}
	if f.Changed(FlagUTF8) {
		cfg.Codec.UTF8Names = f.utf8Names
	}
	if f.Changed(FlagCaseInsensitive) {
		cfg.Codec.CaseInsensitive = f.caseInsensitive
	}
	return cfg
}
