package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/app/controllers"
	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalogue",
}

var (
	productCategory string
	productKeyword  string
	productPage     int
	productPerPage  int
)

// labelsight products list — one page of the filtered catalogue.
var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, filtered by category and keyword",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctrl := controllers.NewProductListController(cmd.Context(), a.products,
			controllers.WithPerPage(productPerPage),
			controllers.WithPage(productPage),
			controllers.WithFilter(strings.ToUpper(productCategory)),
			controllers.WithKeyword(productKeyword))
		defer ctrl.Close()

		if err := ctrl.Fetch(cmd.Context()); err != nil {
			return err
		}

		products := ctrl.Items()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tCATEGORY\tCREATED")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ProductCode, p.Name, p.Category, p.CreatedAt)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d of %d products (page %d)\n", len(products), ctrl.Total(), ctrl.Page())
		if counts := ctrl.CategoryCounts(); len(counts) > 0 {
			var parts []string
			for _, cat := range models.Categories {
				if n := counts[cat]; n > 0 {
					parts = append(parts, fmt.Sprintf("%s %d", cat, n))
				}
			}
			fmt.Printf("on this page: %s\n", strings.Join(parts, ", "))
		}
		return nil
	},
}

// labelsight products get — one product by code.
var productsGetCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		p, err := a.products.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s [%s]\n", p.ProductCode, p.Name, p.Category)
		if p.Descriptions != "" {
			fmt.Println(p.Descriptions)
		}
		fmt.Printf("avatar: %s\nsample: %s\ncreated: %s\n", p.Avatar.PublicURL, p.SampleImage.PublicURL, p.CreatedAt)
		return nil
	},
}

var (
	createCode        string
	createName        string
	createCategory    string
	createDescription string
	createAvatarPath  string
	createSamplePath  string
)

// labelsight products create — upload images, then submit the product.
var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product (uploads both images first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		avatarURL, err := uploadImage(cmd.Context(), a, createAvatarPath, services.UploadTypeProducts)
		if err != nil {
			return err
		}
		sampleURL, err := uploadImage(cmd.Context(), a, createSamplePath, services.UploadTypeProducts)
		if err != nil {
			return err
		}

		p, err := a.products.Create(cmd.Context(), services.ProductCreateInput{
			ProductCode:    createCode,
			Name:           createName,
			Category:       strings.ToUpper(createCategory),
			Descriptions:   createDescription,
			AvatarURL:      avatarURL,
			SampleImageURL: sampleURL,
		})
		if err != nil {
			return formatErr(err)
		}

		fmt.Printf("Created product %s.\n", p.ProductCode)
		return nil
	},
}

// labelsight products update — replace a product's mutable fields.
var productsUpdateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update a product's name, category, description or images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		avatarURL, err := uploadImage(cmd.Context(), a, createAvatarPath, services.UploadTypeProducts)
		if err != nil {
			return err
		}
		sampleURL, err := uploadImage(cmd.Context(), a, createSamplePath, services.UploadTypeProducts)
		if err != nil {
			return err
		}

		p, err := a.products.Update(cmd.Context(), args[0], services.ProductUpdateInput{
			Name:           createName,
			Category:       strings.ToUpper(createCategory),
			Descriptions:   createDescription,
			AvatarURL:      avatarURL,
			SampleImageURL: sampleURL,
		})
		if err != nil {
			return formatErr(err)
		}

		fmt.Printf("Updated product %s.\n", p.ProductCode)
		return nil
	},
}

// labelsight products delete — remove by code.
var productsDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.products.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted product %s.\n", args[0])
		return nil
	},
}

// uploadImage stores a local file through /upload and returns its backend
// path. An empty path is passed through (update keeps the stored image).
func uploadImage(ctx context.Context, a *app, path, uploadType string) (string, error) {
	if path == "" {
		return "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	result, err := a.uploads.UploadFile(ctx, filepath.Base(path), f, uploadType)
	if err != nil {
		return "", err
	}
	return result.FilePath, nil
}

func init() {
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "category filter (FOOD, BEVERAGE, SNACK, FROZEN, FRESH, OTHER)")
	productsListCmd.Flags().StringVar(&productKeyword, "keyword", "", "free-text search")
	productsListCmd.Flags().IntVar(&productPage, "page", 1, "1-based page")
	productsListCmd.Flags().IntVar(&productPerPage, "per-page", controllers.DefaultPerPage, "page size")

	for _, cmd := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		cmd.Flags().StringVar(&createName, "name", "", "product name")
		cmd.Flags().StringVar(&createCategory, "category", "", "product category")
		cmd.Flags().StringVar(&createDescription, "description", "", "free-form description")
		cmd.Flags().StringVar(&createAvatarPath, "avatar", "", "path to the display image")
		cmd.Flags().StringVar(&createSamplePath, "sample", "", "path to the reference label image")
	}
	productsCreateCmd.Flags().StringVar(&createCode, "code", "", "unique product code (immutable)")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
}
