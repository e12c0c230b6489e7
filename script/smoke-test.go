// Command smoke-test drives a running case-opener API through a full game
// loop: register (or log in), open cases at varying multipliers, wait for
// settlement and print the balance trail plus the leaderboard.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

type account struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Balance       string `json:"balance"`
	TotalEarnings string `json:"totalEarnings"`
}

type spin struct {
	ID         string `json:"id"`
	Phase      string `json:"phase"`
	Multiplier int    `json:"multiplier"`
	Cost       string `json:"cost"`
	Payout     string `json:"payout"`
	SettlesAt  string `json:"settlesAt"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	email := flag.String("email", "smoke@example.com", "Account email")
	name := flag.String("name", "Smoke", "Account display name")
	spins := flag.Int("n", 5, "Number of cases to open")
	settleWait := flag.Duration("wait", 6*time.Second, "How long to wait for each settlement")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	acct, err := getOrRegister(client, *baseURL, *name, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "account setup failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Playing as %s <%s>, balance %s\n", acct.Name, acct.Email, acct.Balance)

	for i := 0; i < *spins; i++ {
		multiplier := i%5 + 1

		var committed spin
		status, err := call(client, http.MethodPost, *baseURL+"/case/open",
			map[string]any{"multiplier": multiplier}, &committed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
			os.Exit(1)
		}
		if status != http.StatusCreated {
			fmt.Fprintf(os.Stderr, "open rejected with status %d\n", status)
			os.Exit(1)
		}
		fmt.Printf("Spin %d: multiplier x%d, cost %s, committed as %s\n",
			i+1, multiplier, committed.Cost, committed.ID)

		settled, err := waitSettled(client, *baseURL, committed.ID, *settleWait)
		if err != nil {
			fmt.Fprintf(os.Stderr, "settlement wait failed: %v\n", err)
			os.Exit(1)
		}

		var current account
		if _, err := call(client, http.MethodGet, *baseURL+"/account/current", nil, &current); err != nil {
			fmt.Fprintf(os.Stderr, "reading balance failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  settled: payout %s, balance now %s\n", settled.Payout, current.Balance)
	}

	var board struct {
		Leaderboard []struct {
			Rank          int    `json:"rank"`
			Name          string `json:"name"`
			TotalEarnings string `json:"totalEarnings"`
		} `json:"leaderboard"`
	}
	if _, err := call(client, http.MethodGet, *baseURL+"/leaderboard?limit=10", nil, &board); err != nil {
		fmt.Fprintf(os.Stderr, "leaderboard failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Leaderboard:")
	for _, row := range board.Leaderboard {
		fmt.Printf("  %d. %s (%s)\n", row.Rank, row.Name, row.TotalEarnings)
	}
}

// getOrRegister logs in with the email and registers a fresh account if
// nothing matches it
func getOrRegister(client *http.Client, baseURL, name, email string) (*account, error) {
	var acct account
	status, err := call(client, http.MethodPost, baseURL+"/account/login",
		map[string]any{"email": email}, &acct)
	if err != nil {
		return nil, err
	}
	if status == http.StatusOK {
		return &acct, nil
	}

	status, err = call(client, http.MethodPost, baseURL+"/account/register",
		map[string]any{"name": name, "email": email}, &acct)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("register returned status %d", status)
	}
	return &acct, nil
}

// waitSettled polls the spin until it leaves the committed phase
func waitSettled(client *http.Client, baseURL, spinID string, maxWait time.Duration) (*spin, error) {
	deadline := time.Now().Add(maxWait)
	for {
		var s spin
		status, err := call(client, http.MethodGet, baseURL+"/case/spins/"+spinID, nil, &s)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("spin lookup returned status %d", status)
		}
		if s.Phase == "settled" {
			return &s, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("spin %s still %s after %s", spinID, s.Phase, maxWait)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func call(client *http.Client, method, url string, body any, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			fmt.Fprintf(os.Stderr, "  api error %d: %s\n", apiErr.Code, apiErr.Message)
		}
		return resp.StatusCode, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
