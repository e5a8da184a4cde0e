package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/labelsight/labelsight/app/controllers"
)

var (
	dashFrom      string
	dashTo        string
	dashProduct   string
	dashInspector string
	dashKeyword   string
	dashWatch     bool
	dashInterval  time.Duration
)

// labelsight dashboard — the operator overview: stat cards, the failure
// ranking and the recent-activity feed, optionally re-rendered on a timer.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show inspection metrics, worst products and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		opts, err := dashboardOptions()
		if err != nil {
			return err
		}

		ctrl := controllers.NewDashboardController(cmd.Context(), a.dashboards, a.inspections, opts...)
		defer ctrl.Close()

		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}
		renderDashboard(ctrl)

		if !dashWatch {
			return nil
		}
		ticker := time.NewTicker(dashInterval)
		defer ticker.Stop()
		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case <-ticker.C:
				if err := ctrl.Refresh(cmd.Context()); err != nil {
					fmt.Fprintf(os.Stderr, "refresh failed: %v\n", err)
					continue
				}
				fmt.Println()
				renderDashboard(ctrl)
			}
		}
	},
}

func dashboardOptions() ([]controllers.DashboardOption, error) {
	var opts []controllers.DashboardOption

	if dashFrom != "" || dashTo != "" {
		rng := controllers.DefaultDateRange(time.Now())
		if dashFrom != "" {
			from, err := time.Parse("2006-01-02", dashFrom)
			if err != nil {
				return nil, fmt.Errorf("bad --from date: %w", err)
			}
			rng.From = from
		}
		if dashTo != "" {
			to, err := time.Parse("2006-01-02", dashTo)
			if err != nil {
				return nil, fmt.Errorf("bad --to date: %w", err)
			}
			rng.To = to
		}
		opts = append(opts, controllers.WithDateRange(rng))
	}
	if dashProduct != "" {
		opts = append(opts, controllers.WithProductCode(dashProduct))
	}
	if dashInspector != "" {
		opts = append(opts, controllers.WithInspectorEmail(dashInspector))
	}
	if dashKeyword != "" {
		opts = append(opts, controllers.WithDashboardKeyword(dashKeyword))
	}
	return opts, nil
}

func renderDashboard(ctrl *controllers.DashboardController) {
	rng := ctrl.DateRange()
	fmt.Printf("Dashboard %s — %s\n\n", rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))

	stats := ctrl.Stats()
	fmt.Printf("  Products:     %d\n", stats.TotalProducts)
	fmt.Printf("  Inspections:  %d\n", stats.TotalInspections)
	fmt.Printf("  Passed:       %d\n", stats.SuccessfulInspections)
	fmt.Printf("  Failed:       %d\n", stats.ErrorInspections)
	fmt.Printf("  Success rate: %d%%\n", stats.SuccessRate)

	if ranks := ctrl.TopFailedProducts(); len(ranks) > 0 {
		fmt.Println("\nMost failures:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for i, r := range ranks {
			fmt.Fprintf(w, "  %d.\t%s\t%d failures\n", i+1, r.ProductCode, r.Failures)
		}
		w.Flush()
	}

	if acts := ctrl.RecentActivities(); len(acts) > 0 {
		fmt.Println("\nRecent activity:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for _, act := range acts {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				act.Time, act.InspectionCode, act.ProductCode, act.Action, act.Inspector)
		}
		w.Flush()
	}
}

func init() {
	dashboardCmd.Flags().StringVar(&dashFrom, "from", "", "window start (YYYY-MM-DD)")
	dashboardCmd.Flags().StringVar(&dashTo, "to", "", "window end, whole day counted (YYYY-MM-DD)")
	dashboardCmd.Flags().StringVar(&dashProduct, "product", "", "product code substring filter")
	dashboardCmd.Flags().StringVar(&dashInspector, "inspector", "", "inspector email substring filter")
	dashboardCmd.Flags().StringVar(&dashKeyword, "keyword", "", "free-text search")
	dashboardCmd.Flags().BoolVar(&dashWatch, "watch", false, "re-render on an interval")
	dashboardCmd.Flags().DurationVar(&dashInterval, "interval", 30*time.Second, "watch refresh interval")
}
