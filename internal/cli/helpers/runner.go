// Package helpers provides shared plumbing for command implementations.
package helpers

import (
	"github.com/spf13/cobra"

	"giddy.dev/giddy/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(_ *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext()
	if err != nil {
		return err
	}
	return fn(ctx)
}
