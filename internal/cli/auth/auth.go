// Package auth holds the cli commands that manage the operator session
//
// e.g., atelier login ..., atelier logout
package auth

import "github.com/spf13/cobra"

// Commands returns the top-level session commands
func Commands() []*cobra.Command {
	return []*cobra.Command{
		LoginCmd(),
		LogoutCmd(),
		WhoamiCmd(),
		HashPasswordCmd(),
	}
}
