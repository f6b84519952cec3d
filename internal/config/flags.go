package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers every configuration flag on fs and returns the config
// they write into. The returned value is only meaningful after fs has been
// parsed (cobra does this before running a command).
//
// Flags:
//
//	-r/--content-root     game Content folder
//	--store-data          asset store data folder
//	-a/--address          asset store address
//	--request-timeout     request timeout (e.g., "30s", "1m")
//	--credentials         uploader credentials json path
//	-d/--db               settings database DSN
//	--workers             worker pool size
//	--keep-downloads      keep downloaded packages after install
//	--log-dir             log file directory
//	-c/--config           json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Paths.ContentRoot, "content-root", "r", "", "Game Content folder")
	fs.StringVar(&cfg.Paths.StoreDataDir, "store-data", "", "Asset store data folder")
	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Asset store address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.CredentialsPath, "credentials", "", "Uploader credentials json path")
	fs.StringVarP(&cfg.Storage.DB.DSN, "db", "d", "", "Settings database DSN")
	fs.IntVar(&cfg.Workers.PoolSize, "workers", 0, "Worker pool size")
	fs.BoolVar(&cfg.App.KeepDownloads, "keep-downloads", false, "Keep downloaded packages after install")
	fs.StringVar(&cfg.App.LogDir, "log-dir", "", "Log file directory")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
