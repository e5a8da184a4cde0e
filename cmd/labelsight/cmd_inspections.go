package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
)

var inspectionsCmd = &cobra.Command{
	Use:   "inspections",
	Short: "Browse inspection history and submit label photos",
}

// labelsight inspections list — full history, newest first.
var inspectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inspection history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		page, err := a.inspections.List(cmd.Context())
		if err != nil {
			return err
		}
		printInspections(page.Inspections)
		fmt.Printf("\n%d inspections\n", page.Total)
		return nil
	},
}

// labelsight inspections product <code> — history of one product.
var inspectionsProductCmd = &cobra.Command{
	Use:   "product <product-code>",
	Short: "List the inspection history of one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		page, err := a.inspections.ListByProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printInspections(page.Inspections)
		fmt.Printf("\n%d inspections for %s\n", page.Total, args[0])
		return nil
	},
}

// labelsight inspections get <code> — one record in full.
var inspectionsGetCmd = &cobra.Command{
	Use:   "get <inspection-code>",
	Short: "Show one inspection record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		insp, err := a.inspections.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Inspection %s\n", insp.InspectionCode)
		fmt.Printf("  Product:    %s\n", insp.ProductCode)
		fmt.Printf("  Status:     %s\n", insp.Status)
		fmt.Printf("  Inspector:  %s\n", insp.InspectorEmail)
		fmt.Printf("  Created:    %s\n", insp.CreatedAt)
		if insp.AIConclusion != "" {
			fmt.Printf("  Conclusion: %s\n", insp.AIConclusion)
		}
		if insp.UploadedImage != (models.ImageRef{}) {
			fmt.Printf("  Photo:      %s\n", insp.UploadedImage.PublicURL)
		}
		return nil
	},
}

var uploadProductCode string

// labelsight inspections upload — submit photos for AI comparison.
var inspectionsUploadCmd = &cobra.Command{
	Use:   "upload <photo>...",
	Short: "Submit label photos of a product for AI comparison",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		files := make([]services.UploadFile, 0, len(args))
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			files = append(files, services.UploadFile{Name: filepath.Base(path), Reader: f})
		}

		report, err := a.inspections.Upload(cmd.Context(), uploadProductCode, files)
		if err != nil {
			return err
		}

		fmt.Printf("Uploaded %d photos, %d rejected.\n", report.TotalUploaded, report.TotalFailed)
		for _, name := range report.FailedFiles {
			fmt.Printf("  rejected: %s\n", name)
		}
		for _, code := range report.InspectionRecords {
			fmt.Printf("  created: %s\n", code)
		}
		return nil
	},
}

func printInspections(inspections []models.Inspection) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CODE\tPRODUCT\tSTATUS\tINSPECTOR\tCREATED")
	for _, insp := range inspections {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			insp.InspectionCode, insp.ProductCode, insp.Status, insp.InspectorEmail, insp.CreatedAt)
	}
	w.Flush()
}

func init() {
	inspectionsUploadCmd.Flags().StringVar(&uploadProductCode, "product", "", "product code the photos belong to")
	inspectionsUploadCmd.MarkFlagRequired("product")

	inspectionsCmd.AddCommand(inspectionsListCmd)
	inspectionsCmd.AddCommand(inspectionsProductCmd)
	inspectionsCmd.AddCommand(inspectionsGetCmd)
	inspectionsCmd.AddCommand(inspectionsUploadCmd)
}
