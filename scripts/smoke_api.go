package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var client = &http.Client{Timeout: 30 * time.Second}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func call(method, url string, headers map[string]string, body interface{}) (int, *envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && err != io.EOF {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &env, nil
}

func step(name string, want int, status int, env *envelope, err error) {
	if err != nil {
		color.Red("  %s: %v", name, err)
		os.Exit(1)
	}
	if status != want {
		msg := ""
		if env != nil {
			msg = env.Message
		}
		color.Red("  %s: got %d want %d (%s)", name, status, want, msg)
		os.Exit(1)
	}
	color.Green("  %s: %d", name, status)
}

func main() {
	base := getEnv("BASE_URL", "http://localhost:3000/api")
	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "ChangeMe123!")

	color.Cyan("Smoke testing %s", base)

	color.Yellow("\n[auth]")
	status, env, err := call("POST", base+"/auth/login", nil, map[string]string{"email": email, "password": password})
	step("login", http.StatusOK, status, env, err)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		color.Red("  decode login: %v", err)
		os.Exit(1)
	}
	bearer := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	color.Yellow("\n[bookings]")
	status, env, err = call("POST", base+"/quick-bookings", bearer, map[string]interface{}{
		"first_name":          "Smoke",
		"mobile":              "9000000000",
		"destination":         "Makkah",
		"number_of_travelers": 2,
		"budget":              "150000",
		"payment":             "50000",
	})
	step("create quick booking", http.StatusCreated, status, env, err)

	status, env, err = call("GET", base+"/quick-bookings", bearer, nil)
	step("list quick bookings", http.StatusOK, status, env, err)

	status, env, err = call("GET", base+"/dashboard/stats", bearer, nil)
	step("dashboard stats", http.StatusOK, status, env, err)

	color.Yellow("\n[api keys]")
	status, env, err = call("POST", base+"/api-keys", bearer, map[string]string{"name": "smoke"})
	step("create key", http.StatusCreated, status, env, err)

	var key struct {
		Id  string `json:"id"`
		Key string `json:"key"`
	}
	if err := json.Unmarshal(env.Data, &key); err != nil {
		color.Red("  decode key: %v", err)
		os.Exit(1)
	}
	apiKey := map[string]string{"X-API-Key": key.Key}

	status, env, err = call("GET", base+"/external/validate-key", apiKey, nil)
	step("validate key", http.StatusOK, status, env, err)

	status, env, err = call("POST", base+"/external/contact", apiKey, map[string]string{
		"name":    "Smoke Visitor",
		"email":   "visitor@example.com",
		"message": "Testing the contact intake",
	})
	step("submit contact", http.StatusCreated, status, env, err)

	status, env, err = call("GET", base+"/external/validate-key", map[string]string{"X-API-Key": "not-a-key"}, nil)
	step("reject unknown key", http.StatusUnauthorized, status, env, err)

	status, env, err = call("DELETE", base+"/api-keys/"+key.Id, bearer, nil)
	step("delete key", http.StatusOK, status, env, err)

	fmt.Println()
	color.Cyan("All checks passed")
}
