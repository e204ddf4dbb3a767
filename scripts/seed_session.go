// seed_session.go — standalone script to load a ratings CSV into a fresh
// Shortlist session and print the ranked programs.
//
// Usage:
//
//	go run scripts/seed_session.go -csv /path/to/ratings.csv -api http://localhost:8700 -top 10
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

type sessionView struct {
	ID         string            `json:"id"`
	Categories []string          `json:"categories"`
	Rows       []json.RawMessage `json:"rows"`
}

type rankedRow struct {
	Program    string  `json:"program"`
	FinalScore float64 `json:"final_score"`
}

func main() {
	csvPath := flag.String("csv", "ratings.csv", "path to the ratings CSV")
	apiURL := flag.String("api", "http://localhost:8700", "Shortlist API base URL")
	top := flag.Int("top", 10, "number of ranked programs to print")
	keep := flag.Bool("keep", false, "keep the session instead of deleting it")
	dryRun := flag.Bool("dry-run", false, "print the CSV header without calling the API")
	flag.Parse()

	data, err := os.ReadFile(*csvPath)
	if err != nil {
		log.Fatalf("read csv: %v", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if *dryRun {
		header, err := csv.NewReader(bytes.NewReader(data)).Read()
		if err != nil {
			log.Fatalf("parse csv header: %v", err)
		}
		for i, col := range header {
			fmt.Printf("[%d] %s\n", i+1, col)
		}
		return
	}

	client := &http.Client{}

	// Create a session
	resp, err := client.Post(*apiURL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	var view sessionView
	err = json.NewDecoder(resp.Body).Decode(&view)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("decode session: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("create session: status %d", resp.StatusCode)
	}
	log.Printf("created session %s", view.ID)

	// Import the CSV
	resp, err = client.Post(*apiURL+"/api/v1/sessions/"+view.ID+"/import", "text/csv", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("import csv: %v", err)
	}
	err = json.NewDecoder(resp.Body).Decode(&view)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("decode import: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("import csv: status %d", resp.StatusCode)
	}
	log.Printf("imported %d rows across %d categories", len(view.Rows), len(view.Categories))

	// Rank with the default weights
	resp, err = client.Post(*apiURL+"/api/v1/sessions/"+view.ID+"/rankings", "application/json", nil)
	if err != nil {
		log.Fatalf("rank: %v", err)
	}
	var ranked []rankedRow
	err = json.NewDecoder(resp.Body).Decode(&ranked)
	resp.Body.Close()
	if err != nil {
		log.Fatalf("decode rankings: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("rank: status %d", resp.StatusCode)
	}

	for i, r := range ranked {
		if i >= *top {
			break
		}
		fmt.Printf("%2d. %-40s %6.2f\n", i+1, r.Program, r.FinalScore)
	}

	if *keep {
		log.Printf("keeping session %s", view.ID)
		return
	}

	req, err := http.NewRequest("DELETE", *apiURL+"/api/v1/sessions/"+view.ID, nil)
	if err != nil {
		log.Fatalf("delete session: %v", err)
	}
	resp, err = client.Do(req)
	if err != nil {
		log.Fatalf("delete session: %v", err)
	}
	resp.Body.Close()
	log.Printf("deleted session %s", view.ID)
}
