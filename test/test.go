// Smoke probe for a running server: checks health, then refreshes the
// project map and prints both responses.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func call(client *http.Client, method, url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("can't create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %d\n%s\n", method, url, resp.StatusCode, body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func main() {
	baseurl := flag.String("base", "http://localhost:7320/api", "API base url")
	flag.Parse()

	client := &http.Client{}
	for _, step := range []struct{ method, path string }{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/project-map/update"},
	} {
		if err := call(client, step.method, *baseurl+step.path); err != nil {
			fmt.Println("err:", err)
			os.Exit(1)
		}
	}
}
