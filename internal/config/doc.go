// Package config provides the runtime settings of the viewer.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Environment (KILO_*)    │
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// There is no configuration file.
//
// # Settings
//
//   - logging.file  (KILO_LOG_FILE,  -log)       log destination, empty disables logging
//   - logging.level (KILO_LOG_LEVEL, -log-level) debug, info, warn or error
//   - keys.quit     (KILO_QUIT_KEY,  -quit-key)  key specification that exits
package config
