package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the shape of the optional JSON config file. The
// password is deliberately absent.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Crypto struct {
		KeyFile string `json:"key_file"`
	} `json:"crypto,omitempty"`

	Codec struct {
		CompressionLevel int  `json:"compression_level"`
		UTF8Names        bool `json:"utf8_names"`
		CaseInsensitive  bool `json:"case_insensitive"`
	} `json:"codec,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Crypto: Crypto{
			KeyFile: jsonCfg.Crypto.KeyFile,
		},
		Codec: Codec{
			CompressionLevel: jsonCfg.Codec.CompressionLevel,
			UTF8Names:        jsonCfg.Codec.UTF8Names,
			CaseInsensitive:  jsonCfg.Codec.CaseInsensitive,
		},
	}, nil
}
