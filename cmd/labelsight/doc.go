// Package cmd/labelsight provides the LabelSight admin CLI.
//
// Install once globally:
//
//	go install github.com/labelsight/labelsight/cmd/labelsight@latest
//
// Then, pointed at a LabelSight backend via API_BASE_URL:
//
//	labelsight auth login --access-token <jwt>
//	labelsight dashboard               # metrics, worst products, activity
//	labelsight products list           # paginated, filtered catalog
//	labelsight inspections upload      # submit label photos for AI review
//	labelsight users list              # employee accounts
//
// Every command talks to the same REST API the web dashboard uses; the CLI
// stores its session under ~/.labelsight/credentials.json.
package main
