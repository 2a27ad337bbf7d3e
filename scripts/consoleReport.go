package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"edusite/console"

	"github.com/go-resty/resty/v2"
)

// consoleReport logs in as an admin, mounts the admin dashboard
// controller against a running instance and prints its derived stats.
// Useful as a smoke check after a deploy.
//
//	BASE_URL=http://localhost:3000 ADMIN_EMAIL=... ADMIN_PASSWORD=... go run scripts/consoleReport.go
func main() {
	baseURL := getenv("BASE_URL", "http://localhost:3000")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	token, err := adminLogin(baseURL, email, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	dash := console.NewAdminDashboard(console.NewHTTPGateway(baseURL, token))
	dash.LoadAll(context.Background())

	stats := dash.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("Admin console stats:")
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, stats[k])
	}
}

func adminLogin(baseURL, email, password string) (string, error) {
	client := resty.New().SetBaseURL(baseURL)

	resp, err := client.R().
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/admin/login")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("login returned %s", resp.Status())
	}

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", err
	}
	if body.Data.Token == "" {
		return "", fmt.Errorf("login response had no token")
	}
	return body.Data.Token, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
