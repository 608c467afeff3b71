// Package app is the composition root of Reelboard.
//
// Run loads the TOML configuration (with environment overrides), opens the
// zerolog file logger, restores the saved theme from prefs, builds the
// script generator, and hands control to the ui package until the user quits
// or the context is cancelled.
//
// A broken config file is fatal. A broken prefs file is logged and ignored.
package app
