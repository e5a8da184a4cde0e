// Package main is a minimal example of using the LabelSight client library
// directly, without the CLI.
//
// To run this example:
//
//	API_BASE_URL=http://localhost:3000/api go run .
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labelsight/labelsight/app/controllers"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/config"
	"github.com/labelsight/labelsight/pkg/event"
	"github.com/labelsight/labelsight/pkg/rest"
)

func main() {
	config.Load()
	ctx := context.Background()

	client := rest.New(config.APIBaseURL(),
		rest.WithTimeout(config.HTTPTimeout()))

	// The client fires an event when the backend rejects the session; in a
	// real app this is where you send the user back to the login screen.
	off := event.Listen(event.SessionExpired, func(interface{}) {
		log.Println("session expired, log in again")
	})
	defer off()

	// List the first page of beverage products matching "cola".
	products := services.NewProductService(client)
	ctrl := controllers.NewProductListController(ctx, products,
		controllers.WithFilter("BEVERAGE"),
		controllers.WithKeyword("cola"))
	defer ctrl.Close()

	if err := ctrl.Fetch(ctx); err != nil {
		log.Fatal(err)
	}
	for _, p := range ctrl.Items() {
		fmt.Printf("%s  %s\n", p.ProductCode, p.Name)
	}
	fmt.Printf("%d of %d products\n", len(ctrl.Items()), ctrl.Total())

	// Keyword edits debounce: only the last value within the window fetches.
	ctrl.SetKeyword("co")
	ctrl.SetKeyword("cola zero")
	time.Sleep(600 * time.Millisecond)
	fmt.Printf("now showing %d products for %q\n", len(ctrl.Items()), ctrl.Keyword())
}
