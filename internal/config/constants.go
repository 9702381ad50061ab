package config

import "time"

// Base application details
const AppName = "chrono"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "chrono.log"

// Editor defaults
const DefaultInitialContent = ""
const DefaultInitialCursor = 0
const SystemClipboard = false

// Status Bar
const MessageTimeout = 4 * time.Second
const ShowHistory = true
