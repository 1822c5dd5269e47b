package config

import "time"

const (
	defaultAppName         = "unit-dispatcher"
	defaultLogLevel        = "debug"
	defaultTableName       = "Units"
	defaultDBTableName     = "units"
	defaultProcessorName   = "unit-processor"
	defaultHTTPAddress     = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultAdapterTimeout  = 10 * time.Second
	defaultStorageDriver   = StorageDriverDynamoDB
	defaultAdapterDriver   = AdapterDriverLambda
	defaultNonLambdaServer = ServerModeHTTP
)

// defaultConfig returns the values used for fields that no source has set.
// The server mode depends on whether the process runs inside the Lambda
// runtime, so it is derived from the already merged cfg.
func defaultConfig(cfg *StructuredConfig) *StructuredConfig {
	mode := defaultNonLambdaServer
	if cfg.LambdaFunctionName != "" {
		mode = ServerModeLambda
	}

	return &StructuredConfig{
		App: App{
			Name:     defaultAppName,
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			Driver: defaultStorageDriver,
			DynamoDB: DynamoDB{
				TableName: defaultTableName,
				Region:    cfg.AWSRegion,
			},
			DB: DB{
				TableName: defaultDBTableName,
			},
		},
		Adapter: Adapter{
			Driver:         defaultAdapterDriver,
			ProcessorName:  defaultProcessorName,
			Region:         cfg.AWSRegion,
			RequestTimeout: defaultAdapterTimeout,
		},
		Server: Server{
			Mode:           mode,
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
