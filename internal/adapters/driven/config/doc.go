// Package config persists tool settings as a TOML file in the esq config
// directory. Settings are read once at startup and wired into constructors;
// nothing re-reads the file while the tool runs.
package config
