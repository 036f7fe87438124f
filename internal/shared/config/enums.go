//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// DatabaseDriver selects the gorm dialector
// ENUM(sqlite,mysql)
type DatabaseDriver string

// CacheBackend selects where admin cache entries live
// ENUM(memory,redis)
type CacheBackend string
