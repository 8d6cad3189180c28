// Package key provides key event types, key specification parsing and the
// raw terminal input decoder.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a logical key (navigation keys, Escape, or a byte)
//   - Modifier: Represents modifier keys (only Ctrl is produced by the decoder)
//   - Event: A single decoded key press
//   - Decoder: Turns a raw byte stream into Events
//
// # Key Specifications
//
// Key specifications are used to configure bindings such as the quit key:
//
//   - Simple keys: "a", "q", "Escape", "Home"
//   - With modifiers: "Ctrl+Q", "Ctrl+X"
//   - Vim-style: "<C-q>", "<Esc>"
//
// # Escape Sequences
//
// The decoder recognizes the VT100/xterm sequences for the arrow keys,
// Home, End, Page Up, Page Down and Delete. A lone ESC and a truncated
// sequence cannot be told apart; both decode as KeyEscape.
package key
