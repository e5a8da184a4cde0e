package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/pkg/reqid"
)

func main() {
	// One request ID spans the whole invocation, so every backend call a
	// command makes correlates in the server logs.
	ctx := reqid.WithValue(context.Background(), reqid.New())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labelsight",
	Short: "labelsight — admin console for the label-inspection backend",
	Long: "labelsight manages products, employee accounts and AI label-inspection\n" +
		"results against the inspection backend's REST API.",
}

func init() {
	// Session
	rootCmd.AddCommand(authCmd)

	// Catalogue
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(usersCmd)

	// Inspection history
	rootCmd.AddCommand(inspectionsCmd)

	// Files
	rootCmd.AddCommand(uploadCmd)

	// Aggregates
	rootCmd.AddCommand(dashboardCmd)
}
