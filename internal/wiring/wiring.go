// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/javamap/javamap/internal/adapters/cache"
	_ "github.com/javamap/javamap/internal/adapters/config"
	_ "github.com/javamap/javamap/internal/adapters/fs"
	_ "github.com/javamap/javamap/internal/adapters/logger"
	_ "github.com/javamap/javamap/internal/adapters/scanner"
	_ "github.com/javamap/javamap/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/javamap/javamap/internal/app"
	_ "github.com/javamap/javamap/internal/engine/discovery"
)
