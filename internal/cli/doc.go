// Package cli defines the holocron cobra commands.
package cli
