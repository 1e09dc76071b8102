// Command jobctl walks the client stack end to end against a running API:
// sign in, search job posts, and print the results from the store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"JobLane-client/internal/api"
	"JobLane-client/internal/config"
	"JobLane-client/internal/dispatch"
	"JobLane-client/internal/model"
	"JobLane-client/internal/service"
	"JobLane-client/internal/session"
	"JobLane-client/internal/store"
)

func main() {
	cfg := config.Load()

	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	title := flag.String("title", "", "job title filter")
	location := flag.String("location", "", "location filter")
	page := flag.Int("page", 1, "result page")
	limit := flag.Int("limit", 10, "page size")
	flag.Parse()

	client, err := api.New(cfg.BaseURL)
	if err != nil {
		log.Fatalf("Failed to build API client: %s", err)
	}

	st := store.New()
	d := dispatch.New(st)
	manager := session.NewManager(cfg.SessionFile)
	if err := manager.Hydrate(); err != nil {
		log.Fatalf("Failed to hydrate session: %s", err)
	}
	client.OnAuthFailure(func() {
		manager.Clear()
		st.ClearSession()
	})

	auth := service.NewAuth(client, d, manager)
	seeker := service.NewJobSeeker(client, d)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *email != "" {
		act := <-auth.Login(ctx, service.Credentials{Email: *email, Password: *password})
		if act.Err != nil {
			log.Fatalf("Login failed: %s", act.Err.Message)
		}
		user := st.Auth().User
		fmt.Printf("Signed in as %s (%s)\n", user.DisplayName, user.Role)
		fmt.Println("Default view:", session.RoleHome(user.Role))
	}

	act := <-seeker.SearchJobs(ctx, model.ListQuery{
		Page:     *page,
		Limit:    *limit,
		Title:    *title,
		Location: *location,
	})
	if act.Err != nil {
		log.Fatalf("Search failed: %s", act.Err.Message)
	}

	state := st.JobSeeker()
	fmt.Printf("Page %d of %d\n", state.SearchPagination.Page, state.SearchPagination.TotalPages)
	for _, post := range state.SearchResults {
		fmt.Printf("  #%d  %-28s %-12s %s\n", post.ID, post.Title, post.EmploymentType, post.Location)
	}
}
