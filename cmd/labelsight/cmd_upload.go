package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/app/services"
)

var uploadType string

// labelsight upload — store a file through the generic /upload endpoint and
// print the backend path, for wiring into later create/update calls.
var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload image files and print their backend paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if uploadType != services.UploadTypeProducts && uploadType != services.UploadTypeAvatars {
			return fmt.Errorf("unknown upload type %q (use %s or %s)",
				uploadType, services.UploadTypeProducts, services.UploadTypeAvatars)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}

			result, err := a.uploads.UploadFile(cmd.Context(), filepath.Base(path), f, uploadType)
			f.Close()
			if err != nil {
				return err
			}

			fmt.Printf("%s → %s\n", path, result.FilePath)
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadType, "type", services.UploadTypeProducts,
		"upload type (products or avatars)")
}
