// Package config loads and persists the assistant's local configuration.
//
// The configuration is a flat INI file in the user's home directory with a
// single [DEFAULT] section:
//
//	[DEFAULT]
//	OpenAI_API_Key = sk-...
//	Command_Risk = 3
//
// Values run to the end of the line: "#" and ";" start a comment only at the
// beginning of a line. A value with surrounding whitespace or a leading or
// trailing quote character is written between triple quotes ("""...""") so
// it reads back unchanged.
//
// Store.SetAndPersist rewrites the whole file after every change.
package config
