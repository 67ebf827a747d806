package config

import "os"

func IsDebug() bool {
	return os.Getenv("MEDIC_DEBUG") == "1"
}

func IsJSONLog() bool {
	return os.Getenv("MEDIC_LOG_JSON") == "1"
}
